package main

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wedkarz02/aesgo/aes"
)

// config is the resolved, validated set of options for one run, the
// analog of the local variables Old-C/aes/aes.c's main() populates from
// getopt_long_only before dispatching to aesNNNEncrypt/Decrypt.
type config struct {
	bits      int
	mode      aes.Mode
	encrypt   bool
	key       []byte
	iv        []byte
	randIV    bool
	noPKCS    bool
	inBase64  bool
	inHex     bool
	outBase64 bool
	outHex    bool
	file      string
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected positional arguments: %v", args)
	}

	if test, bits := selfTestRequested(); test {
		if err := aes.SelfTest(bits); err != nil {
			return err
		}
		slog.Info("self-test passed", "variant", fmt.Sprintf("AES-%d", bits))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return run(cfg, cmd.OutOrStdout())
}

func selfTestRequested() (bool, int) {
	switch {
	case viper.GetBool("test128"):
		return true, 128
	case viper.GetBool("test192"):
		return true, 192
	case viper.GetBool("test256"):
		return true, 256
	default:
		return false, 0
	}
}

func loadConfig() (*config, error) {
	b128, b192, b256 := viper.GetBool("128"), viper.GetBool("192"), viper.GetBool("256")
	if boolCount(b128, b192, b256) != 1 {
		return nil, errors.New("exactly one of -128, -192, -256 is required")
	}
	bits := 128
	switch {
	case b192:
		bits = 192
	case b256:
		bits = 256
	}

	ecb, cbc, ctr := viper.GetBool("ecb"), viper.GetBool("cbc"), viper.GetBool("ctr")
	if boolCount(ecb, cbc, ctr) != 1 {
		return nil, errors.New("exactly one of -ecb, -cbc, -ctr is required")
	}
	mode := aes.ModeECB
	switch {
	case cbc:
		mode = aes.ModeCBC
	case ctr:
		mode = aes.ModeCTR
	}

	encrypt, decrypt := viper.GetBool("encrypt"), viper.GetBool("decrypt")
	if boolCount(encrypt, decrypt) != 1 {
		return nil, errors.New("exactly one of -encrypt, -decrypt is required")
	}

	key, err := resolveKey(bits)
	if err != nil {
		return nil, err
	}

	randivFlag := viper.GetBool("randiv")
	iv, _, err := resolveIV(randivFlag && encrypt)
	if err != nil {
		return nil, err
	}

	return &config{
		bits:      bits,
		mode:      mode,
		encrypt:   encrypt,
		key:       key,
		iv:        iv,
		randIV:    randivFlag,
		noPKCS:    viper.GetBool("nopkcs"),
		inBase64:  viper.GetBool("base64") || viper.GetBool("ibase64"),
		inHex:     viper.GetBool("hex") || viper.GetBool("ihex"),
		outBase64: viper.GetBool("obase64"),
		outHex:    viper.GetBool("ohex"),
		file:      viper.GetString("file"),
	}, nil
}

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

func resolveKey(bits int) ([]byte, error) {
	key, hexkey := viper.GetString("key"), viper.GetString("hexkey")
	if key == "" && hexkey == "" {
		return nil, errors.New("missing required -key or -hexkey")
	}

	wantBytes := bits / 8
	if key != "" {
		if len(key) != wantBytes {
			return nil, fmt.Errorf("-%d requires a -key of length %d, got %d", bits, wantBytes, len(key))
		}
		return []byte(key), nil
	}

	wantHexChars := bits / 4
	if len(hexkey) != wantHexChars {
		return nil, fmt.Errorf("-%d requires a -hexkey of length %d, got %d", bits, wantHexChars, len(hexkey))
	}
	return decodeHex(hexkey)
}

// resolveIV applies the -iv/-hexiv/-randiv precedence from Old-C/aes/aes.c:
// randiv wins when wantRandom (set only on encrypt; on decrypt the IV is
// read back out of the input stream instead, see run()), then -iv, then
// -hexiv, defaulting to an all-zero IV.
func resolveIV(wantRandom bool) (iv []byte, randIV bool, err error) {
	if wantRandom {
		iv = make([]byte, aes.IVSize)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, false, fmt.Errorf("iv synthesis failed: %w", err)
		}
		return iv, true, nil
	}

	if v := viper.GetString("iv"); v != "" {
		iv = make([]byte, aes.IVSize)
		copy(iv, v) // '\0'-filled if short, truncated if long
		return iv, false, nil
	}

	if v := viper.GetString("hexiv"); v != "" {
		if len(v) != aes.IVSize*2 {
			return nil, false, fmt.Errorf("-hexiv must be %d hex characters, got %d", aes.IVSize*2, len(v))
		}
		iv, err = decodeHex(v)
		if err != nil {
			return nil, false, err
		}
		return iv, false, nil
	}

	return make([]byte, aes.IVSize), false, nil
}

func openInput(file string) (io.ReadCloser, error) {
	if file == "" || file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("can't read file %q: %w", file, err)
	}
	return f, nil
}

func readInput(cfg *config) ([]byte, error) {
	f, err := openInput(cfg.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	switch {
	case cfg.inBase64:
		return decodeBase64(string(raw))
	case cfg.inHex:
		return decodeHex(string(raw))
	default:
		return raw, nil
	}
}

func writeOutput(w io.Writer, cfg *config, data []byte) error {
	switch {
	case cfg.outBase64:
		_, err := io.WriteString(w, encodeBase64(data))
		return err
	case cfg.outHex:
		_, err := io.WriteString(w, encodeHex(data))
		return err
	default:
		_, err := w.Write(data)
		return err
	}
}

// run performs one full encrypt or decrypt invocation: read, frame/IV
// handling, transform, emit. It mirrors Old-C/aes/aes.c's main() body
// from "read the input" through the final output loop.
func run(cfg *config, w io.Writer) error {
	data, err := readInput(cfg)
	if err != nil {
		return err
	}

	cipher, err := aes.NewCipher(cfg.key)
	if err != nil {
		return err
	}
	defer cipher.Zeroize()

	prependsIV := cfg.randIV && cfg.mode != aes.ModeECB

	var opts []aes.Option
	if cfg.noPKCS {
		opts = append(opts, aes.WithNoPadding())
	}

	var out bytes.Buffer

	if cfg.encrypt {
		if prependsIV {
			out.Write(cfg.iv)
		}
		ciphertext, err := cipher.Encrypt(data, cfg.mode, cfg.iv, opts...)
		if err != nil {
			return err
		}
		out.Write(ciphertext)
	} else {
		iv := cfg.iv
		body := data
		if cfg.randIV && cfg.mode != aes.ModeECB {
			if len(data) < aes.IVSize {
				return errors.New("input too short to contain a prepended IV")
			}
			iv = data[:aes.IVSize]
			body = data[aes.IVSize:]
		}
		plaintext, err := cipher.Decrypt(body, cfg.mode, iv, opts...)
		if err != nil {
			return err
		}
		out.Write(plaintext)
	}

	return writeOutput(w, cfg, out.Bytes())
}
