// Command proofgen is a small CLI for generating and verifying proofs
// without writing Go code: keygen produces a Schnorr keypair, prove/verify
// exercise schnorr, dleq, or pedersen proofs over keys and bases supplied
// as base64-encoded command-line arguments.
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// command is one subcommand proofgen understands.
type command struct {
	Name        string
	Description string
	Execute     func(args []string) error
}

func main() {
	commands := []command{
		{Name: "keygen", Description: "generate a Schnorr key pair (x, Y = x*G)", Execute: cmdKeyGen},
		{Name: "commit", Description: "generate a Pedersen commitment (x, r, G, H) -> C", Execute: cmdCommit},
		{Name: "prove", Description: "generate a proof: prove <schnorr|dleq|pedersen> [args...]", Execute: cmdProve},
		{Name: "verify", Description: "verify a proof: verify <schnorr|dleq|pedersen> [args...]", Execute: cmdVerify},
	}

	if len(os.Args) < 2 {
		showHelp(commands)
		os.Exit(1)
	}

	name := os.Args[1]
	for _, c := range commands {
		if c.Name == name {
			if err := c.Execute(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", name)
	showHelp(commands)
	os.Exit(1)
}

func showHelp(commands []command) {
	fmt.Println("proofgen - generate and verify sigma proofs")
	fmt.Println()
	fmt.Println("usage: proofgen <command> [arguments]")
	fmt.Println()
	fmt.Println("commands:")
	for _, c := range commands {
		fmt.Printf("  %-10s %s\n", c.Name, c.Description)
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func decodeB64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func encodeB64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
