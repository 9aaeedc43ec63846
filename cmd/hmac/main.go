package main

import (
	"fmt"
	"io"
	"os"

	"github.com/virtuacademy/touchpoint/pkg/crypto"
)

// Signs a webhook body the way Acuity does, for exercising the receiver
// locally:
//
//	echo -n 'action=appointment.scheduled&id=123' | go run ./cmd/hmac <api_key>
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/hmac <api_key> < body")
		os.Exit(1)
	}

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Printf("Failed to read body: %v\n", err)
		os.Exit(1)
	}

	signature := crypto.ComputeHMAC256Base64(body, os.Args[1])
	fmt.Printf("x-acuity-signature: %s\n", signature)
}
