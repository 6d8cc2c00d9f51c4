package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// getPassword reads a line from the terminal without echoing it, restoring
// the terminal state if interrupted
func getPassword(prompt string) ([]byte, error) {
	stdin := int(syscall.Stdin)
	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return nil, err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		_, ok := <-c
		if !ok {
			return
		}
		_ = term.Restore(stdin, initialTermState)
		os.Exit(1)
	}()
	defer func() {
		signal.Stop(c)
		close(c)
	}()

	fmt.Print(prompt)
	password, err := term.ReadPassword(stdin)
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return password, nil
}
