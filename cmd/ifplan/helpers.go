package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/ifplan-network/ifplan/pkg/audit"
	"github.com/ifplan-network/ifplan/pkg/netplan"
)

// finishWrite is the tail of every write command: log the audit event,
// then either write the render artifacts (-x) or print a preview.
func finishWrite(operation, device string, args map[string]string, opErr error) error {
	logAudit(operation, device, args, opErr)
	if opErr != nil {
		return opErr
	}

	text, err := mdl.Stringify()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	if !executeMode {
		fmt.Print(text)
		fmt.Fprintln(os.Stderr, "\nPreview only; re-run with -x to write")
		return nil
	}

	if err := mdl.RenderConfig().Write(rootDir, mdl.Project()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	for _, path := range netplan.ConfigPaths(rootDir) {
		fmt.Println("wrote", path)
	}
	return nil
}

func logAudit(operation, device string, args map[string]string, opErr error) {
	if auditLogger == nil {
		return
	}
	ev := audit.NewEvent(currentUser(), operation, device).
		WithArguments(args).
		WithExecuted(executeMode)
	if opErr != nil {
		ev.WithError(opErr)
	} else {
		ev.WithSuccess()
	}
	if err := auditLogger.Log(ev); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log write failed: %v\n", err)
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}

// ipVersionFlag resolves the mutually exclusive -4/-6 flags.
func ipVersionFlag(v4, v6 bool) (int, error) {
	switch {
	case v4 && v6:
		return 0, fmt.Errorf("-4 and -6 are mutually exclusive")
	case v6:
		return 6, nil
	default:
		return 4, nil
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
