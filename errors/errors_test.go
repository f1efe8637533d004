package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "unsupported with method",
			err:  Unsupported(PhaseAnalyze, "compute", "jsr instruction"),
			want: []string{"[analyze]", "unsupported_construct", "in compute", "jsr instruction"},
		},
		{
			name: "inconsistent without method",
			err:  Inconsistent(PhaseValidate, "", "dangling label L3"),
			want: []string{"[validate]", "structural_inconsistency", "dangling label L3"},
		},
		{
			name: "parse with line",
			err:  ParseFailed(7, "unknown mnemonic \"retrn\""),
			want: []string{"[parse]", "invalid_input", "line 7"},
		},
		{
			name: "wrapped cause",
			err:  Wrap(PhasePlan, KindInvalidInput, fmt.Errorf("boom"), "plan failed"),
			want: []string{"[plan]", "plan failed", "caused by: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, frag := range tt.want {
				if !strings.Contains(msg, frag) {
					t.Errorf("Error() = %q, missing %q", msg, frag)
				}
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := Unsupported(PhaseAnalyze, "m", "ret")

	if !stderrors.Is(err, &Error{Phase: PhaseAnalyze, Kind: KindUnsupported}) {
		t.Error("expected match on same phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseNormalize, Kind: KindUnsupported}) {
		t.Error("unexpected match on different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseAnalyze, Kind: KindInconsistent}) {
		t.Error("unexpected match on different kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(PhaseParse, KindInvalidInput, cause, "context")

	if !stderrors.Is(err, cause) {
		t.Error("expected unwrap chain to reach cause")
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(PhasePlan, "label", "L9")
	if got := err.Error(); !strings.Contains(got, `label "L9" not found`) {
		t.Errorf("Error() = %q", got)
	}
}
