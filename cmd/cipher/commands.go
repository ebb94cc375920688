package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cipher-backend/crypto"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cipher",
		Short: "Encrypt and decrypt text with classical ciphers",
		Long: `Run Caesar, Vigenère, columnar transposition or Atbash over a message.

Input is normalized first: accents are removed and letters uppercased.

EXAMPLES:
  cipher caesar --text "Hello" --shift 3
  cipher vigenere --text "Attack at dawn" --key LEMON
  cipher transposition --text "TCTWAAAATKDN" --key KEY --decrypt
  echo "Hello" | cipher atbash`,
		SilenceUsage: true,
	}

	for _, method := range crypto.Methods() {
		root.AddCommand(newMethodCmd(method))
	}
	root.AddCommand(newListCmd())

	return root
}

func newMethodCmd(method crypto.Method) *cobra.Command {
	cmd := &cobra.Command{
		Use:   method.String(),
		Short: methodSummary(method),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethod(cmd, method)
		},
	}

	cmd.Flags().StringP("text", "t", "", "Text to process (default: stdin)")
	switch method {
	case crypto.MethodCaesar:
		cmd.Flags().StringP("shift", "s", strconv.Itoa(crypto.DefaultShift), "Number of positions to shift (integer)")
	case crypto.MethodVigenere, crypto.MethodTransposition:
		cmd.Flags().StringP("key", "k", "", "Keyword (letters only are used)")
		_ = cmd.MarkFlagRequired("key")
	}
	if method.Reversible() {
		cmd.Flags().BoolP("decrypt", "d", false, "Decrypt instead of encrypt")
	}

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, method := range crypto.Methods() {
				if _, err := fmt.Fprintf(out, "%-14s %s\n", method, methodSummary(method)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runMethod(cmd *cobra.Command, method crypto.Method) error {
	if method.NeedsKey() {
		key, _ := cmd.Flags().GetString("key")
		if err := crypto.ValidateKey(method, key); err != nil {
			return err
		}
	}

	text, err := inputText(cmd)
	if err != nil {
		return fmt.Errorf("failed to get input text: %w", err)
	}
	if text == "" {
		return fmt.Errorf("no input text provided. Use --text or pipe to stdin")
	}

	encrypt := true
	if method.Reversible() {
		decrypt, _ := cmd.Flags().GetBool("decrypt")
		encrypt = !decrypt
	}

	var key string
	switch method {
	case crypto.MethodCaesar:
		key, _ = cmd.Flags().GetString("shift")
	case crypto.MethodVigenere, crypto.MethodTransposition:
		key, _ = cmd.Flags().GetString("key")
	}

	result, err := crypto.Apply(method, text, key, encrypt)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func inputText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func methodSummary(method crypto.Method) string {
	switch method {
	case crypto.MethodCaesar:
		return "Shift every letter by a fixed number of positions"
	case crypto.MethodVigenere:
		return "Shift letters by the letters of a repeating keyword"
	case crypto.MethodTransposition:
		return "Reorder letters through a keyword-ordered column grid"
	case crypto.MethodAtbash:
		return "Mirror the alphabet (A<->Z); its own inverse"
	default:
		return ""
	}
}
