package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

// rootCmd mirrors the flag surface of the C reference's getopt_long_only
// table (Old-C/aes/aes.c), reimplemented with cobra flags bound through
// viper the way kgiusti-go-fdo-server/cmd/root.go wires its CLI.
var rootCmd = &cobra.Command{
	Use:   "aesgo",
	Short: "AES-128/192/256 encryption over binary, hex, or Base64 streams",
	Long: `aesgo encrypts or decrypts data with AES in ECB, CBC, or CTR mode.

Exactly one key size (-128, -192, -256), one mode (-ecb, -cbc, -ctr), and
one direction (-encrypt, -decrypt) must be given, along with a key via
-key or -hexkey.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	flags := rootCmd.Flags()

	flags.Bool("128", false, "use AES-128")
	flags.Bool("192", false, "use AES-192")
	flags.Bool("256", false, "use AES-256")

	flags.Bool("ecb", false, "ECB mode (PKCS#7 padded)")
	flags.Bool("cbc", false, "CBC mode (PKCS#7 padded)")
	flags.Bool("ctr", false, "CTR mode (no padding)")

	flags.Bool("encrypt", false, "encrypt the input")
	flags.Bool("decrypt", false, "decrypt the input")

	flags.String("key", "", "ASCII passkey, length must equal bits/8")
	flags.String("hexkey", "", "hex passkey, length must equal bits/4")

	flags.String("iv", "", "ASCII initialization vector, truncated/zero-padded to 16 bytes")
	flags.String("hexiv", "", "hex initialization vector, 32 hex characters")
	flags.Bool("randiv", false, "synthesize a random IV; under CBC/CTR, emit it as the first output block on -encrypt, "+
		"or treat the first input block as the IV on -decrypt (CTR: 8-byte nonce + 8-byte big-endian counter)")

	flags.Bool("nopkcs", false, "suppress PKCS#7 padding on -encrypt, skip its removal on -decrypt")

	flags.Bool("base64", false, "treat input as Base64 encoded")
	flags.Bool("ibase64", false, "alias for -base64")
	flags.Bool("obase64", false, "Base64-encode output")

	flags.Bool("hex", false, "treat input as hex")
	flags.Bool("ihex", false, "alias for -hex")
	flags.Bool("ohex", false, "hex-encode output")

	flags.String("file", "-", "input file, - means stdin")

	flags.Bool("test128", false, "run AES-128 known-answer self-tests and exit")
	flags.Bool("test192", false, "run AES-192 known-answer self-tests and exit")
	flags.Bool("test256", false, "run AES-256 known-answer self-tests and exit")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

func setupLogger() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, nil)))
}

// Execute runs the CLI; it is the sole entry point main.main calls.
// Single-dash long flags (-128, -encrypt, -key=...) are accepted as well
// as pflag's double-dash form.
func Execute() {
	setupLogger()

	args := make([]string, len(os.Args)-1)
	copy(args, os.Args[1:])
	for i, a := range args {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			name, _, _ := strings.Cut(a[1:], "=")
			if rootCmd.Flags().Lookup(name) != nil {
				args[i] = "-" + a
			}
		}
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aesgo: %v\n", err)
		os.Exit(1)
	}
}
