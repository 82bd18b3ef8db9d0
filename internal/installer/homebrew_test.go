package installer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const installBrewPrompt = "Install Homebrew now?"

func TestHomebrew(t *testing.T) {
	tests := []struct {
		name      string
		present   bool
		confirm   bool
		failing   []string
		wantErr   error
		installed bool
	}{
		{name: "present", present: true},
		{name: "missing and declined", wantErr: ErrPackageManagerMissing},
		{name: "missing and installed", confirm: true, installed: true},
		{name: "install fails", confirm: true, failing: []string{brewInstallCmd}, wantErr: ErrPackageManagerMissing, installed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			checker := newFakeRunner()
			if tt.present {
				checker.ok(brewCheckCmd, "Homebrew 4.5.8\nHomebrew/homebrew-core (git revision 1a2b)")
			}
			installer := newInstallRunner(tt.failing...)
			p := newPrompter()
			p.confirms[installBrewPrompt] = tt.confirm
			env := &Env{Checker: checker, Installer: installer, Prompter: p}

			err := Homebrew(context.Background(), env)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.installed, installer.ran(brewInstallCmd))

			if tt.present {
				assert.Empty(t, p.asked)
				assert.Contains(t, buf.String(), "Homebrew 4.5.8")
				assert.NotContains(t, buf.String(), "git revision")
			}
		})
	}
}
