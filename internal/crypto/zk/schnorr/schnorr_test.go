package schnorr

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
)

func TestSchnorrProof(t *testing.T) {
	curve := curves.P192()

	// 1. Generate a random secret x
	x, err := curve.NewScalar(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate secret: %v", err)
	}

	// 2. Compute public key X = x * G
	X, err := curve.ScalarBaseMult(x)
	if err != nil {
		t.Fatalf("Failed to compute public key: %v", err)
	}

	// 3. Generate Proof
	proof, err := Prove(curve, x, X, rand.Reader)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}

	// 4. Verify Proof
	if !proof.Verify(curve, X) {
		t.Fatal("Verify failed for valid proof")
	}
}

func TestSchnorrProofInvalid(t *testing.T) {
	curve := curves.P192()

	x, _ := curve.NewScalar(rand.Reader)
	X, _ := curve.ScalarBaseMult(x)
	proof, _ := Prove(curve, x, X, rand.Reader)

	// Case A: Modify s
	tampered := &Proof{R: proof.R, S: new(big.Int).Add(proof.S, big.NewInt(1))}
	tampered.S.Mod(tampered.S, curve.Order())
	if tampered.Verify(curve, X) {
		t.Fatal("Verify passed for tampered s")
	}

	// Case B: Modify R, double it
	R2, err := curve.Double(proof.R)
	if err != nil {
		t.Fatalf("Double failed: %v", err)
	}
	if (&Proof{R: R2, S: proof.S}).Verify(curve, X) {
		t.Fatal("Verify passed for tampered R")
	}

	// Case C: Proof for a different key
	y, _ := curve.NewScalar(rand.Reader)
	Y, _ := curve.ScalarBaseMult(y)
	if proof.Verify(curve, Y) {
		t.Fatal("Verify passed for wrong public key")
	}

	// Case D: Identity commitment
	if (&Proof{R: curves.Identity(), S: proof.S}).Verify(curve, X) {
		t.Fatal("Verify passed for identity commitment")
	}
}

func TestSchnorrProveRejectsBadInputs(t *testing.T) {
	curve := curves.P192()
	if _, err := Prove(curve, nil, curve.Generator(), rand.Reader); err == nil {
		t.Fatal("expected error for nil secret")
	}
	if _, err := Prove(curve, big.NewInt(1), curves.Identity(), rand.Reader); err == nil {
		t.Fatal("expected error for identity public key")
	}
}

func TestSchnorrProveRejectsOffCurveKey(t *testing.T) {
	curve := curves.P192()
	G := curve.Generator()

	// Same point as G, coordinates not reduced mod p.
	unreduced := curves.NewPoint(new(big.Int).Add(G.X(), curve.Modulus()), G.Y())
	if _, err := Prove(curve, big.NewInt(1), unreduced, rand.Reader); err == nil {
		t.Fatal("expected error for unreduced public key")
	}

	offCurve := curves.NewPoint(G.X(), new(big.Int).Add(G.Y(), big.NewInt(1)))
	if _, err := Prove(curve, big.NewInt(1), offCurve, rand.Reader); err == nil {
		t.Fatal("expected error for off-curve public key")
	}
}

func TestSchnorrProveRejectsIdentityCommitment(t *testing.T) {
	// G = (5, 1) has order 19, but the curve claims order 20, so the
	// nonce k = 19 drawn from [1, 19] yields R = 19 * G = O.
	curve, err := curves.New("toy", big.NewInt(2), big.NewInt(2), big.NewInt(17), big.NewInt(20),
		curves.NewPoint(big.NewInt(5), big.NewInt(1)))
	if err != nil {
		t.Fatalf("Failed to build curve: %v", err)
	}
	if _, err := Prove(curve, big.NewInt(3), curve.Generator(), bytes.NewReader([]byte{18})); err == nil {
		t.Fatal("expected error for identity commitment")
	}
}
