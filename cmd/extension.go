package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/expenses/config"
)

// EnvVerbose is set to "true" for extensions when -v is given.
const EnvVerbose = "XPS_VERBOSE"

// RunExtension attempts to find and execute an external xps-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "xps-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	e, err := setup("")
	if err != nil {
		failure(err)
		return true, 1
	}
	e.log.Debug().Str("extension", lp).Msg("running extension")

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env,
		config.EnvLedger+"="+e.cfg.LedgerFile,
		config.EnvCurrency+"="+e.cfg.Currency,
		config.EnvStyle+"="+e.cfg.Style,
		config.EnvLogLevel+"="+e.cfg.LogLevel,
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)
	if e.cfg.NoColor {
		cmd.Env = append(cmd.Env, config.EnvNoColor+"=1")
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
