package main

import (
	"flag"
	"fmt"

	"github.com/anupsv/sigmaproofs/pkg/dleq"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/pedersen"
	"github.com/anupsv/sigmaproofs/pkg/schnorr"
)

func cmdKeyGen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	fs.Parse(args)

	x, err := group.RandomScalar()
	if err != nil {
		return err
	}
	y := group.ScalarBaseMul(x)

	return printJSON(struct {
		PrivateKey string `json:"privateKey"`
		PublicKey  string `json:"publicKey"`
	}{
		PrivateKey: encodeB64(x.Bytes()),
		PublicKey:  encodeB64(y.Bytes()),
	})
}

func cmdCommit(args []string) error {
	fs := flag.NewFlagSet("commit", flag.ExitOnError)
	x := fs.String("x", "", "base64-encoded attribute scalar")
	r := fs.String("r", "", "base64-encoded blinding scalar")
	g := fs.String("g", "", "base64-encoded base G (defaults to the fixed generator)")
	h := fs.String("h", "", "base64-encoded base H")
	fs.Parse(args)

	xs, err := decodeScalarFlag(*x)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	rs, err := decodeScalarFlag(*r)
	if err != nil {
		return fmt.Errorf("r: %w", err)
	}
	ge, err := decodeElementFlag(*g)
	if err != nil {
		return fmt.Errorf("g: %w", err)
	}
	he, err := decodeElementFlag(*h)
	if err != nil {
		return fmt.Errorf("h: %w", err)
	}

	c := pedersen.Commit(xs, rs, ge, he)
	return printJSON(struct {
		Commitment string `json:"commitment"`
	}{Commitment: encodeB64(c.Bytes())})
}

func decodeScalarFlag(s string) (group.Scalar, error) {
	raw, err := decodeB64(s)
	if err != nil {
		return group.Scalar{}, err
	}
	return group.DecodeScalar(raw)
}

func decodeElementFlag(s string) (group.Element, error) {
	if s == "" {
		return group.GeneratorElement(), nil
	}
	raw, err := decodeB64(s)
	if err != nil {
		return group.Element{}, err
	}
	return group.DecodeElement(raw)
}

func cmdProve(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: prove <schnorr|dleq|pedersen> [flags]")
	}
	protocol, rest := args[0], args[1:]

	switch protocol {
	case "schnorr":
		fs := flag.NewFlagSet("prove schnorr", flag.ExitOnError)
		x := fs.String("x", "", "base64-encoded secret scalar")
		msg := fs.String("message", "", "message to bind (plaintext)")
		fs.Parse(rest)

		xs, err := decodeScalarFlag(*x)
		if err != nil {
			return err
		}
		y := group.ScalarBaseMul(xs)
		proof, err := schnorr.Prove(xs, y, []byte(*msg))
		if err != nil {
			return err
		}
		return printJSON(struct {
			PublicKey string `json:"publicKey"`
			Proof     string `json:"proof"`
		}{PublicKey: encodeB64(y.Bytes()), Proof: encodeB64(proof)})

	case "dleq":
		fs := flag.NewFlagSet("prove dleq", flag.ExitOnError)
		x := fs.String("x", "", "base64-encoded shared secret scalar")
		g2 := fs.String("g2", "", "base64-encoded second base g2")
		msg := fs.String("message", "", "message to bind (plaintext)")
		fs.Parse(rest)

		xs, err := decodeScalarFlag(*x)
		if err != nil {
			return err
		}
		g2e, err := decodeElementFlag(*g2)
		if err != nil {
			return err
		}
		g1e := group.GeneratorElement()
		h1 := group.ScalarMul(xs, g1e)
		h2 := group.ScalarMul(xs, g2e)
		proof, err := dleq.Prove(xs, g1e, h1, g2e, h2, []byte(*msg))
		if err != nil {
			return err
		}
		return printJSON(struct {
			H1    string `json:"h1"`
			H2    string `json:"h2"`
			Proof string `json:"proof"`
		}{H1: encodeB64(h1.Bytes()), H2: encodeB64(h2.Bytes()), Proof: encodeB64(proof)})

	case "pedersen":
		fs := flag.NewFlagSet("prove pedersen", flag.ExitOnError)
		x := fs.String("x", "", "base64-encoded attribute scalar")
		r := fs.String("r", "", "base64-encoded blinding scalar")
		h := fs.String("h", "", "base64-encoded base H")
		msg := fs.String("message", "", "message to bind (plaintext)")
		fs.Parse(rest)

		xs, err := decodeScalarFlag(*x)
		if err != nil {
			return err
		}
		rs, err := decodeScalarFlag(*r)
		if err != nil {
			return err
		}
		he, err := decodeElementFlag(*h)
		if err != nil {
			return err
		}
		ge := group.GeneratorElement()
		c := pedersen.Commit(xs, rs, ge, he)
		proof, err := pedersen.Prove(xs, rs, ge, he, c, []byte(*msg))
		if err != nil {
			return err
		}
		return printJSON(struct {
			Commitment string `json:"commitment"`
			Proof      string `json:"proof"`
		}{Commitment: encodeB64(c.Bytes()), Proof: encodeB64(proof)})

	default:
		return fmt.Errorf("unknown protocol: %s", protocol)
	}
}

func cmdVerify(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: verify <schnorr|dleq|pedersen> [flags]")
	}
	protocol, rest := args[0], args[1:]

	switch protocol {
	case "schnorr":
		fs := flag.NewFlagSet("verify schnorr", flag.ExitOnError)
		y := fs.String("y", "", "base64-encoded public key")
		msg := fs.String("message", "", "message the proof was bound to")
		proof := fs.String("proof", "", "base64-encoded proof")
		fs.Parse(rest)

		ye, err := decodeElementFlag(*y)
		if err != nil {
			return err
		}
		pb, err := decodeB64(*proof)
		if err != nil {
			return err
		}
		return printVerdict(schnorr.Verify(ye, []byte(*msg), pb))

	case "dleq":
		fs := flag.NewFlagSet("verify dleq", flag.ExitOnError)
		g2 := fs.String("g2", "", "base64-encoded second base g2")
		h1 := fs.String("h1", "", "base64-encoded h1")
		h2 := fs.String("h2", "", "base64-encoded h2")
		msg := fs.String("message", "", "message the proof was bound to")
		proof := fs.String("proof", "", "base64-encoded proof")
		fs.Parse(rest)

		g2e, err := decodeElementFlag(*g2)
		if err != nil {
			return err
		}
		h1e, err := decodeElementFlag(*h1)
		if err != nil {
			return err
		}
		h2e, err := decodeElementFlag(*h2)
		if err != nil {
			return err
		}
		pb, err := decodeB64(*proof)
		if err != nil {
			return err
		}
		return printVerdict(dleq.Verify(group.GeneratorElement(), h1e, g2e, h2e, []byte(*msg), pb))

	case "pedersen":
		fs := flag.NewFlagSet("verify pedersen", flag.ExitOnError)
		h := fs.String("h", "", "base64-encoded base H")
		c := fs.String("c", "", "base64-encoded commitment")
		msg := fs.String("message", "", "message the proof was bound to")
		proof := fs.String("proof", "", "base64-encoded proof")
		fs.Parse(rest)

		he, err := decodeElementFlag(*h)
		if err != nil {
			return err
		}
		ce, err := decodeElementFlag(*c)
		if err != nil {
			return err
		}
		pb, err := decodeB64(*proof)
		if err != nil {
			return err
		}
		return printVerdict(pedersen.Verify(group.GeneratorElement(), he, ce, []byte(*msg), pb))

	default:
		return fmt.Errorf("unknown protocol: %s", protocol)
	}
}

func printVerdict(ok bool) error {
	return printJSON(struct {
		Valid bool `json:"valid"`
	}{Valid: ok})
}
