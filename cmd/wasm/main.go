//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoCurve", map[string]interface{}{
		"Curves":   js.FuncOf(Curves),
		"BaseMult": js.FuncOf(BaseMult),
		"Mult":     js.FuncOf(Mult),
		"Add":      js.FuncOf(Add),
		"Prove":    js.FuncOf(Prove),
		"Verify":   js.FuncOf(Verify),
	})

	<-c
}

// request is the JSON argument shared by every exported function. Points,
// proofs and scalars are hex strings.
type request struct {
	Curve      string `json:"curve"`
	Compressed bool   `json:"compressed"`
	Scalar     string `json:"scalar"`
	Point      string `json:"point"`
	Other      string `json:"other"`
	Proof      string `json:"proof"`
}

func parseRequest(args []js.Value) (*request, ecc.Group, error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("expected 1 argument (jsonRequest)")
	}
	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return nil, nil, fmt.Errorf("invalid json: %v", err)
	}
	if req.Curve == "" {
		req.Curve = "wei25519"
	}
	g, err := ecc.New(&ecc.Parameters{Curve: req.Curve, Compressed: req.Compressed})
	if err != nil {
		return nil, nil, err
	}
	return &req, g, nil
}

func parseScalar(s string) (*big.Int, error) {
	k, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid scalar %q", s)
	}
	return k, nil
}

func respond(v map[string]interface{}) interface{} {
	b, _ := json.Marshal(v)
	return string(b)
}

func fail(err error) interface{} {
	return fmt.Sprintf("error: %v", err)
}

// Curves returns a JSON array of supported curve names.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(ecc.Curves())
	return string(b)
}

// BaseMult computes scalar * G.
// Request fields: curve, compressed, scalar.
// Returns: {"point": "..."}
func BaseMult(this js.Value, args []js.Value) interface{} {
	req, g, err := parseRequest(args)
	if err != nil {
		return fail(err)
	}
	k, err := parseScalar(req.Scalar)
	if err != nil {
		return fail(err)
	}
	p, err := g.ScalarBaseMult(k)
	if err != nil {
		return fail(err)
	}
	return respond(map[string]interface{}{"point": hex.EncodeToString(p)})
}

// Mult computes scalar * point.
// Request fields: curve, compressed, point, scalar.
func Mult(this js.Value, args []js.Value) interface{} {
	req, g, err := parseRequest(args)
	if err != nil {
		return fail(err)
	}
	pt, err := hex.DecodeString(req.Point)
	if err != nil {
		return fail(err)
	}
	k, err := parseScalar(req.Scalar)
	if err != nil {
		return fail(err)
	}
	p, err := g.ScalarMult(pt, k)
	if err != nil {
		return fail(err)
	}
	return respond(map[string]interface{}{"point": hex.EncodeToString(p)})
}

// Add computes point + other.
func Add(this js.Value, args []js.Value) interface{} {
	req, g, err := parseRequest(args)
	if err != nil {
		return fail(err)
	}
	a, err := hex.DecodeString(req.Point)
	if err != nil {
		return fail(err)
	}
	b, err := hex.DecodeString(req.Other)
	if err != nil {
		return fail(err)
	}
	p, err := g.Add(a, b)
	if err != nil {
		return fail(err)
	}
	return respond(map[string]interface{}{"point": hex.EncodeToString(p)})
}

// Prove returns the public key for scalar and a proof of knowledge.
// Returns: {"point": "...", "proof": "..."}
func Prove(this js.Value, args []js.Value) interface{} {
	req, g, err := parseRequest(args)
	if err != nil {
		return fail(err)
	}
	x, err := parseScalar(req.Scalar)
	if err != nil {
		return fail(err)
	}
	pub, proof, err := g.Prove(x)
	if err != nil {
		return fail(err)
	}
	return respond(map[string]interface{}{
		"point": hex.EncodeToString(pub),
		"proof": hex.EncodeToString(proof),
	})
}

// Verify checks proof against point.
// Returns: {"valid": true|false}
func Verify(this js.Value, args []js.Value) interface{} {
	req, g, err := parseRequest(args)
	if err != nil {
		return fail(err)
	}
	pub, err := hex.DecodeString(req.Point)
	if err != nil {
		return fail(err)
	}
	proof, err := hex.DecodeString(req.Proof)
	if err != nil {
		return fail(err)
	}
	return respond(map[string]interface{}{"valid": g.Verify(pub, proof)})
}
