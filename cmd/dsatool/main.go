package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/go-i2p/dsa"
	"github.com/go-i2p/dsa/keystore"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dsatool [flags] <generate|sign|verify|export-ssh|inspect>")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	cfgFile := flag.String("config", "", "path to config file")
	dir := flag.String("dir", "", "key directory (default from config)")
	name := flag.String("name", "", "key name (default from config)")
	bits := flag.Int("bits", 0, "modulus width for fresh parameters (default from config)")
	in := flag.String("in", "", "input file, - for stdin")
	sigFile := flag.String("sig", "", "signature file (default <in>.sig)")
	out := flag.String("out", "", "output file, - for stdout")
	raw := flag.Bool("raw", false, "treat input as a precomputed digest")
	flag.Parse()

	CfgFile = *cfgFile
	log.Debug("parsing dsatool configuration")
	InitConfig()

	cfg := NewToolConfigFromViper()
	if *dir != "" {
		cfg.KeyDir = *dir
	}
	if *name != "" {
		cfg.KeyName = *name
	}
	if *bits != 0 {
		cfg.Bits = *bits
	}

	switch flag.Arg(0) {
	case "generate":
		runGenerate(cfg)
	case "sign":
		runSign(cfg, *in, *sigFile, *raw)
	case "verify":
		runVerify(cfg, *in, *sigFile, *raw)
	case "export-ssh":
		runExportSSH(cfg, *out)
	case "inspect":
		runInspect(cfg)
	default:
		usage()
	}
}

// openKeystore loads the configured key, generating one when no key
// file exists yet.
func openKeystore(cfg *ToolConfig) *keystore.DSAKeyStore {
	ks, err := keystore.NewDSAKeyStoreFromDisk(cfg.KeyDir, cfg.KeyName, cfg.Bits)
	if err != nil {
		log.Fatalf("failed to open keystore: %s", err)
	}
	return ks
}

func runGenerate(cfg *ToolConfig) {
	ks := openKeystore(cfg)
	if err := ks.StoreKeys(); err != nil {
		log.Fatalf("failed to store key: %s", err)
	}
	key := ks.Key()
	fmt.Printf("key %s: %d bit modulus, %d bit subgroup\n",
		ks.KeyID(),
		new(big.Int).SetBytes(key.P).BitLen(),
		new(big.Int).SetBytes(key.Q).BitLen())
}

func runSign(cfg *ToolConfig, in, sigPath string, raw bool) {
	ks := openKeystore(cfg)
	data := readInput(in)
	signer, err := ks.Key().NewSigner()
	if err != nil {
		log.Fatalf("failed to create signer: %s", err)
	}
	var sig []byte
	if raw {
		sig, err = signer.SignHash(data)
	} else {
		sig, err = signer.Sign(data)
	}
	if err != nil {
		log.Fatalf("signing failed: %s", err)
	}
	if sigPath == "" && in != "" && in != "-" {
		sigPath = in + ".sig"
	}
	writeOutput(sigPath, sig)
	if sigPath != "" && sigPath != "-" {
		fmt.Printf("wrote %d byte signature to %s\n", len(sig), sigPath)
	}
}

func runVerify(cfg *ToolConfig, in, sigPath string, raw bool) {
	ks := openKeystore(cfg)
	data := readInput(in)
	if sigPath == "" {
		if in == "" || in == "-" {
			log.Fatalf("signature file required with -sig")
		}
		sigPath = in + ".sig"
	}
	sig, err := os.ReadFile(sigPath)
	if err != nil {
		log.Fatalf("failed to read signature: %s", err)
	}
	public, _, err := ks.GetKeys()
	if err != nil {
		log.Fatalf("failed to load public key: %s", err)
	}
	verifier, err := public.NewVerifier()
	if err != nil {
		log.Fatalf("failed to create verifier: %s", err)
	}
	if raw {
		err = verifier.VerifyHash(data, sig)
	} else {
		err = verifier.Verify(data, sig)
	}
	if err != nil {
		fmt.Println("signature: INVALID")
		os.Exit(1)
	}
	fmt.Println("signature: OK")
}

func runExportSSH(cfg *ToolConfig, out string) {
	ks := openKeystore(cfg)
	line, err := dsa.ExportSSHPublicKey(ks.Key())
	if err != nil {
		log.Fatalf("failed to export ssh public key: %s", err)
	}
	writeOutput(out, line)
}

func runInspect(cfg *ToolConfig) {
	ks := openKeystore(cfg)
	key := ks.Key()
	fmt.Printf("key id:        %s\n", ks.KeyID())
	fmt.Printf("modulus:       %d bits\n", new(big.Int).SetBytes(key.P).BitLen())
	fmt.Printf("subgroup:      %d bits\n", new(big.Int).SetBytes(key.Q).BitLen())
	fmt.Printf("signature:     %d bytes\n", key.SignatureSize())
	fmt.Printf("parameters ok: %t\n", dsa.VerifyParameters(key))
	fmt.Printf("public ok:     %t\n", dsa.VerifyPublicKey(key))
	fmt.Printf("private ok:    %t\n", dsa.VerifyPrivateKey(key))
	if der, err := dsa.ExportPublicKey(key); err == nil {
		sum := sha256.Sum256(der)
		fmt.Printf("fingerprint:   %s\n", hex.EncodeToString(sum[:8]))
	}
}

func readInput(path string) []byte {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %s", err)
		}
		return data
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read %s: %s", path, err)
	}
	return data
}

func writeOutput(path string, data []byte) {
	if path == "" || path == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %s", path, err)
	}
}
