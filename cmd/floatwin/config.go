package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Gaurav-Gosain/floatwin/internal/config"
)

var errNoEditor = errors.New("no editor found: set $EDITOR or $VISUAL")

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the first available editor from $EDITOR, $VISUAL and
// a list of common editors.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(e); err == nil {
			return path, nil
		}
	}
	return "", errNoEditor
}

func editConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if !config.Exists(path) {
		if _, err := config.WriteDefault(path); err != nil {
			return err
		}
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	// $EDITOR may carry arguments, e.g. "code --wait".
	args := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's environment
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	if _, err := config.LoadFile(path); err != nil {
		return fmt.Errorf("saved config is not valid: %w", err)
	}
	return nil
}

func resetConfigToDefaults(in io.Reader, out io.Writer, yes bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return resetConfigAt(path, in, out, yes)
}

func resetConfigAt(path string, in io.Reader, out io.Writer, yes bool) error {
	if config.Exists(path) && !yes {
		_, _ = fmt.Fprintf(out, "Overwrite %s with the defaults? [y/N] ", path)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			_, _ = fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if _, err := config.WriteDefault(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Configuration reset: %s\n", path)
	return nil
}

func validateConfigFile(out io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return validateConfigAt(path, out)
}

func validateConfigAt(path string, out io.Writer) error {
	if !config.Exists(path) {
		_, _ = fmt.Fprintf(out, "%s does not exist, defaults are used\n", path)
		return nil
	}

	_, result, err := config.CheckFile(path)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		_, _ = fmt.Fprintf(out, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		_, _ = fmt.Fprintf(out, "error: %s\n", e)
	}
	if result.HasErrors() {
		return fmt.Errorf("%w: %d error(s) in %s", config.ErrInvalidConfig, len(result.Errors), path)
	}
	_, _ = fmt.Fprintf(out, "%s is valid\n", path)
	return nil
}
