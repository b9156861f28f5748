// Package cipher implements a keyword stream cipher over 64-bit blocks with a 4-bit parity signature.
//
// A 2-hex-digit keyword is reduced to its significant bits and tiled across the block to form
// the keystream. Encryption and decryption are the same XOR. The signature is computed from four
// parity checks over fixed bit positions of the ciphertext and gates plaintext recovery on decode.
//
// The cipher is pedagogical and offers no cryptographic strength.
package cipher
