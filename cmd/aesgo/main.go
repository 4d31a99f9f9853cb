// Command aesgo encrypts or decrypts data with AES-128/192/256 in ECB,
// CBC, or CTR mode over raw, hex, or Base64 streams.
package main

func main() {
	Execute()
}
