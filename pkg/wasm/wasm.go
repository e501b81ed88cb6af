//go:build js && wasm

package wasm

import (
	"encoding/hex"
	"fmt"
	"syscall/js"

	"github.com/anupsv/sigmaproofs/pkg/dleq"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/pedersen"
	"github.com/anupsv/sigmaproofs/pkg/schnorr"
)

// Initialize installs the Sigma global object and every bound function.
func Initialize() {
	js.Global().Set("Sigma", js.ValueOf(
		map[string]interface{}{
			"version":         js.FuncOf(version),
			"generateKeyPair": js.FuncOf(generateKeyPair),
			"proveSchnorr":    js.FuncOf(proveSchnorr),
			"verifySchnorr":   js.FuncOf(verifySchnorr),
			"proveDLEQ":       js.FuncOf(proveDLEQ),
			"verifyDLEQ":      js.FuncOf(verifyDLEQ),
			"commitPedersen":  js.FuncOf(commitPedersen),
			"provePedersen":   js.FuncOf(provePedersen),
			"verifyPedersen":  js.FuncOf(verifyPedersen),
		},
	))
}

func version(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(map[string]interface{}{"version": "1.0.0", "group": "ristretto255"})
}

func generateKeyPair(this js.Value, args []js.Value) interface{} {
	x, err := group.RandomScalar()
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to generate key pair: %v", err))
	}
	y := group.ScalarBaseMul(x)
	return js.ValueOf(map[string]interface{}{
		"success":    true,
		"privateKey": hex.EncodeToString(x.Bytes()),
		"publicKey":  hex.EncodeToString(y.Bytes()),
	})
}

func decodeHexScalar(s string) (group.Scalar, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return group.Scalar{}, err
	}
	return group.DecodeScalar(b)
}

func decodeHexElement(s string) (group.Element, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return group.Element{}, err
	}
	return group.DecodeElement(b)
}

func messageArg(v js.Value) ([]byte, error) {
	s := v.String()
	if len(s) > MaxMessageSize {
		return nil, fmt.Errorf("message exceeds %d bytes", MaxMessageSize)
	}
	return []byte(s), nil
}

func proveSchnorr(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResponse("proveSchnorr requires privateKey and message")
	}
	x, err := decodeHexScalar(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid private key: %v", err))
	}
	msg, err := messageArg(args[1])
	if err != nil {
		return errorResponse(err.Error())
	}
	y := group.ScalarBaseMul(x)
	proof, err := schnorr.Prove(x, y, msg)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to prove: %v", err))
	}
	return js.ValueOf(map[string]interface{}{
		"success":   true,
		"publicKey": hex.EncodeToString(y.Bytes()),
		"proof":     hex.EncodeToString(proof),
	})
}

func verifySchnorr(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResponse("verifySchnorr requires publicKey, message, and proof")
	}
	y, err := decodeHexElement(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid public key: %v", err))
	}
	msg, err := messageArg(args[1])
	if err != nil {
		return errorResponse(err.Error())
	}
	proof, err := hex.DecodeString(args[2].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid proof: %v", err))
	}
	return js.ValueOf(map[string]interface{}{"success": true, "valid": schnorr.Verify(y, msg, proof)})
}

func proveDLEQ(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResponse("proveDLEQ requires secret, g2, and message")
	}
	x, err := decodeHexScalar(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid secret: %v", err))
	}
	g2, err := decodeHexElement(args[1].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid g2: %v", err))
	}
	msg, err := messageArg(args[2])
	if err != nil {
		return errorResponse(err.Error())
	}
	g1 := group.GeneratorElement()
	h1 := group.ScalarMul(x, g1)
	h2 := group.ScalarMul(x, g2)
	proof, err := dleq.Prove(x, g1, h1, g2, h2, msg)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to prove: %v", err))
	}
	return js.ValueOf(map[string]interface{}{
		"success": true,
		"h1":      hex.EncodeToString(h1.Bytes()),
		"h2":      hex.EncodeToString(h2.Bytes()),
		"proof":   hex.EncodeToString(proof),
	})
}

func verifyDLEQ(this js.Value, args []js.Value) interface{} {
	if len(args) < 5 {
		return errorResponse("verifyDLEQ requires g2, h1, h2, message, and proof")
	}
	g2, err := decodeHexElement(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid g2: %v", err))
	}
	h1, err := decodeHexElement(args[1].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid h1: %v", err))
	}
	h2, err := decodeHexElement(args[2].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid h2: %v", err))
	}
	msg, err := messageArg(args[3])
	if err != nil {
		return errorResponse(err.Error())
	}
	proof, err := hex.DecodeString(args[4].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid proof: %v", err))
	}
	ok := dleq.Verify(group.GeneratorElement(), h1, g2, h2, msg, proof)
	return js.ValueOf(map[string]interface{}{"success": true, "valid": ok})
}

func commitPedersen(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errorResponse("commitPedersen requires x, r, and h")
	}
	x, err := decodeHexScalar(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid x: %v", err))
	}
	r, err := decodeHexScalar(args[1].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid r: %v", err))
	}
	h, err := decodeHexElement(args[2].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid h: %v", err))
	}
	c := pedersen.Commit(x, r, group.GeneratorElement(), h)
	return js.ValueOf(map[string]interface{}{"success": true, "commitment": hex.EncodeToString(c.Bytes())})
}

func provePedersen(this js.Value, args []js.Value) interface{} {
	if len(args) < 5 {
		return errorResponse("provePedersen requires x, r, h, c, and message")
	}
	x, err := decodeHexScalar(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid x: %v", err))
	}
	r, err := decodeHexScalar(args[1].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid r: %v", err))
	}
	h, err := decodeHexElement(args[2].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid h: %v", err))
	}
	c, err := decodeHexElement(args[3].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid c: %v", err))
	}
	msg, err := messageArg(args[4])
	if err != nil {
		return errorResponse(err.Error())
	}
	proof, err := pedersen.Prove(x, r, group.GeneratorElement(), h, c, msg)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to prove: %v", err))
	}
	return js.ValueOf(map[string]interface{}{"success": true, "proof": hex.EncodeToString(proof)})
}

func verifyPedersen(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return errorResponse("verifyPedersen requires h, c, message, and proof")
	}
	h, err := decodeHexElement(args[0].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid h: %v", err))
	}
	c, err := decodeHexElement(args[1].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid c: %v", err))
	}
	msg, err := messageArg(args[2])
	if err != nil {
		return errorResponse(err.Error())
	}
	proof, err := hex.DecodeString(args[3].String())
	if err != nil {
		return errorResponse(fmt.Sprintf("invalid proof: %v", err))
	}
	ok := pedersen.Verify(group.GeneratorElement(), h, c, msg, proof)
	return js.ValueOf(map[string]interface{}{"success": true, "valid": ok})
}

func errorResponse(message string) interface{} {
	return js.ValueOf(map[string]interface{}{"success": false, "error": message})
}
