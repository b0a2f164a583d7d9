package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// AskYesNo returns true if user input is 'y' or 'Y' and false if 'n' or 'N'.
//
// If user types neither 'y', 'Y', 'n' or 'N', it asks again.
//
// <in> is a reader to read data from. Usually it should be 'os.Stdin'.
//
// If <in> is exhausted before a valid answer is given, returns false.
func AskYesNo(log *logrus.Logger, in io.Reader, prompt string) bool {
	answer, ok := ask(log, bufio.NewReader(in), true, prompt, func(input string) bool {
		switch input {
		case "y", "Y", "n", "N":
			return false
		}
		return true
	})
	return ok && lo.Ternary(strings.ToLower(answer) == "y", true, false)
}

// ask returns user input, preliminarily printing <prompt>, and true on success.
//
// It runs until read is successful and <callback> returns false, or until <in> reaches EOF.
//
// If <trim> is true, trim space from user input before passing it to <callback>.
func ask(log *logrus.Logger, in *bufio.Reader, trim bool, prompt string, callback func(string) bool) (string, bool) {
	for {
		fmt.Print(prompt)
		input, err := in.ReadString('\n')
		if trim {
			input = strings.TrimSpace(input)
		}
		if !callback(input) {
			return input, true
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			log.Error(errors.Wrap(err, "Read from standard input"))
		}
	}
}
