// Command keygen generates a Schnorr keypair: a secret scalar x and the
// public point Y = x*G over Ristretto255.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/anupsv/sigmaproofs/pkg/group"
)

func main() {
	outputFile := flag.String("output", "", "output file for the key pair (optional, defaults to stdout)")
	flag.Parse()

	x, err := group.RandomScalar()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating secret scalar: %v\n", err)
		os.Exit(1)
	}
	y := group.ScalarBaseMul(x)

	serialized := struct {
		PrivateKey string `json:"privateKey"`
		PublicKey  string `json:"publicKey"`
	}{
		PrivateKey: base64.StdEncoding.EncodeToString(x.Bytes()),
		PublicKey:  base64.StdEncoding.EncodeToString(y.Bytes()),
	}

	jsonData, err := json.MarshalIndent(serialized, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error serializing key pair: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, jsonData, 0600); err != nil {
			fmt.Fprintf(os.Stderr, "error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("key pair written to %s\n", *outputFile)
		return
	}
	fmt.Println(string(jsonData))
}
