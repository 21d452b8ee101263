package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "goalplanner/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	t.Run("prints the computed plan", func(t *testing.T) {
		out, err := execute(t, "plan",
			"--name", "Wedding",
			"--type", "marriage",
			"--target", "1000000",
			"--years", "5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			"Goal              Wedding (marriage)",
			"Risk profile      moderate",
			"Horizon           5 years",
			"Future value      ₹1,276,281.56",
			"Amount needed     ₹1,276,281.56",
			"One-time now      ₹724,196.",
			"Or monthly        ₹15,885.",
			"Allocation        equity 50% / debt 40% / gold 10%",
			"Stocks            50.0%",
			"Mutual funds      50.0%",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("derives the retirement target", func(t *testing.T) {
		out, err := execute(t, "plan", "--type", "retirement", "--expenses", "50000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Target (today)    ₹12,000,000.00") {
			t.Errorf("expected derived retirement target in output:\n%s", out)
		}
	})

	t.Run("rejects unknown goal types", func(t *testing.T) {
		_, err := execute(t, "plan", "--type", "vacation", "--target", "1000")
		if !errors.Is(err, apperrors.ErrInvalidGoalType) {
			t.Errorf("expected ErrInvalidGoalType, got %v", err)
		}
	})

	t.Run("requires a target", func(t *testing.T) {
		_, err := execute(t, "plan", "--name", "No Target")
		if !errors.Is(err, apperrors.ErrTargetRequired) {
			t.Errorf("expected ErrTargetRequired, got %v", err)
		}
	})

	t.Run("requires retirement inputs", func(t *testing.T) {
		_, err := execute(t, "plan", "--type", "retirement")
		if !errors.Is(err, apperrors.ErrRetirementInputs) {
			t.Errorf("expected ErrRetirementInputs, got %v", err)
		}
	})
}

func TestProjectCommand(t *testing.T) {
	out, err := execute(t, "project", "--target", "1000000", "--years", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	startYear := time.Now().Year()
	for _, want := range []string{
		"YEAR",
		fmt.Sprintf("%d", startYear),
		fmt.Sprintf("%d", startYear+5),
		"₹1,000,000.00",
		"₹1,276,281.56",
		"One-time: invested",
		"Monthly:  invested",
		"ROI",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Header, 6 projection rows, comparison footer.
	if lines := strings.Count(out, "\n"); lines < 10 {
		t.Errorf("expected a full projection table, got %d lines:\n%s", lines, out)
	}
}

func TestRankCommand(t *testing.T) {
	t.Run("rejects unknown risk profiles", func(t *testing.T) {
		_, err := execute(t, "rank", "--profile", "reckless")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "INVALID_RISK_PROFILE" {
			t.Errorf("expected INVALID_RISK_PROFILE, got %v", err)
		}
	})

	t.Run("rejects unknown periods", func(t *testing.T) {
		_, err := execute(t, "rank", "--period", "7d")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNSUPPORTED_PERIOD" {
			t.Errorf("expected UNSUPPORTED_PERIOD, got %v", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "planctl v") {
		t.Errorf("expected version output, got %q", out)
	}
}
