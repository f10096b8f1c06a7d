package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-keyset/pkg/encoding"
)

var (
	encodeIn  string
	encodeOut string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Convert a comma-separated key list to the binary key format",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(encodeIn)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()

		keys, err := encoding.ParseKeyText(f)
		if err != nil {
			return err
		}
		log.Debug("parsed key text", zap.String("path", encodeIn), zap.Int("keys", len(keys)))

		if err := os.WriteFile(encodeOut, encoding.EncodeKeys(keys), 0o644); err != nil {
			return errors.Wrap(err, "write output")
		}
		log.Info("encoded keys", zap.String("path", encodeOut), zap.Int("keys", len(keys)))
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeIn, "in", "i", "keys.txt", "comma-separated key list")
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "keys.hex", "binary key output file")
}
