package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks that a file exists, and asks the user confirmation
// to go forward.
//
// It returns true if the file doesn't exist, or if the user answered yes to
// the confirmation msg shown on the command line. If ok is false or err is
// not nil, the operation on path should be aborted.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		fmt.Println("other error", err)
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and asks the user to type y or n (typing
// ENTER defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}
