package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/expenses"
)

// prompt returns a Confirm that asks on out and reads the answer from in.
// It asks again until the answer is yes or no; end of input means no.
func prompt(in io.Reader, out io.Writer) expenses.Confirm {
	r := bufio.NewReader(in)
	return func(question string) bool {
		for {
			fmt.Fprintf(out, "%s (Y/N): ", question)
			line, err := r.ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return true
			case "n", "no":
				return false
			}
			if err != nil {
				fmt.Fprintln(out)
				return false
			}
		}
	}
}

// confirmation returns expenses.Yes when the user already agreed with -y.
func confirmation(yes bool) expenses.Confirm {
	if yes {
		return expenses.Yes
	}
	return prompt(stdin, stdout)
}
