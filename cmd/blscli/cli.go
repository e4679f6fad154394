package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
	"github.com/urfave/cli/v2"

	"github.com/nucypher/NuBLS/curve"
	"github.com/nucypher/NuBLS/key"
	"github.com/nucypher/NuBLS/sig"
)

var keyFlag = &cli.StringFlag{
	Name:     "key",
	Usage:    "hex-encoded private key (ordinary: 32 bytes, fragment: 64 bytes)",
	Required: true,
}

var pubFlag = &cli.StringFlag{
	Name:     "pub",
	Usage:    "hex-encoded public key (48 bytes, compressed G1)",
	Required: true,
}

var messageFlag = &cli.StringFlag{
	Name:     "message",
	Usage:    "hex-encoded pre-mapped message point on G2 (96 bytes, compressed)",
	Required: true,
}

var sigFlag = &cli.StringFlag{
	Name:     "sig",
	Usage:    "hex-encoded signature (ordinary: 96 bytes, fragment: 128 bytes)",
	Required: true,
}

var thresholdFlag = &cli.IntFlag{
	Name:     "threshold",
	Usage:    "minimum number of shares required to reconstruct (m)",
	Required: true,
}

var sharesFlag = &cli.IntFlag{
	Name:     "shares",
	Usage:    "total number of shares to produce (n)",
	Required: true,
}

// CLI builds the blscli application.
func CLI() *cli.App {
	app := cli.NewApp()
	app.Name = "blscli"
	app.Usage = "BLS12-381 threshold signatures and proxy re-signatures"
	app.Commands = []*cli.Command{
		{
			Name:  "generate",
			Usage: "generate a fresh private/public key pair",
			Action: func(c *cli.Context) error {
				sk := key.Random()
				return printKeyPair(sk)
			},
		},
		{
			Name: "message",
			Usage: "sample a fresh random point on G2 suitable as a demo message. " +
				"This module does not implement hash_to_curve; real callers must " +
				"supply their own pre-mapped message point.",
			Action: func(c *cli.Context) error {
				m := curve.G2().Point().Pick(random.New())
				b, err := m.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Printf("message: %s\n", hex.EncodeToString(b))
				return nil
			},
		},
		{
			Name:  "split",
			Usage: "split a private key into n Shamir fragments with threshold m",
			Flags: []cli.Flag{keyFlag, thresholdFlag, sharesFlag},
			Action: func(c *cli.Context) error {
				sk, err := decodeKey(c.String(keyFlag.Name))
				if err != nil {
					return err
				}
				fragments, err := sk.Split(c.Int(thresholdFlag.Name), c.Int(sharesFlag.Name))
				if err != nil {
					return err
				}
				for i, f := range fragments {
					b, err := f.MarshalBinary()
					if err != nil {
						return err
					}
					fmt.Printf("fragment[%d]: %s\n", i, hex.EncodeToString(b))
				}
				return nil
			},
		},
		{
			Name:  "recover",
			Usage: "recover the master private key from m or more fragments",
			Flags: []cli.Flag{&cli.StringSliceFlag{Name: "fragment", Required: true, Usage: "hex-encoded fragment private key, repeatable"}},
			Action: func(c *cli.Context) error {
				fragments, err := decodeKeys(c.StringSlice("fragment"))
				if err != nil {
					return err
				}
				sk, err := key.Recover(fragments)
				if err != nil {
					return err
				}
				return printKeyPair(sk)
			},
		},
		{
			Name:  "sign",
			Usage: "sign a pre-mapped G2 message point",
			Flags: []cli.Flag{keyFlag, messageFlag},
			Action: func(c *cli.Context) error {
				sk, err := decodeKey(c.String(keyFlag.Name))
				if err != nil {
					return err
				}
				message, err := decodePoint(curve.G2(), c.String(messageFlag.Name))
				if err != nil {
					return err
				}
				signature := sk.Sign(message)
				b, err := signature.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Printf("signature: %s\n", hex.EncodeToString(b))
				return nil
			},
		},
		{
			Name:  "verify",
			Usage: "verify a signature against a public key and message; exits non-zero on invalid",
			Flags: []cli.Flag{pubFlag, messageFlag, sigFlag},
			Action: func(c *cli.Context) error {
				pub, err := decodePublicKey(c.String(pubFlag.Name))
				if err != nil {
					return err
				}
				message, err := decodePoint(curve.G2(), c.String(messageFlag.Name))
				if err != nil {
					return err
				}
				signature, err := decodeSignature(c.String(sigFlag.Name))
				if err != nil {
					return err
				}
				result := pub.Verify(message, signature)
				fmt.Println(result)
				if result.IsInvalid() {
					return fmt.Errorf("signature is invalid")
				}
				return nil
			},
		},
		{
			Name:  "assemble",
			Usage: "combine fragment signatures on the same message into an assembled signature",
			Flags: []cli.Flag{&cli.StringSliceFlag{Name: "fragment-sig", Required: true, Usage: "hex-encoded fragment signature, repeatable"}},
			Action: func(c *cli.Context) error {
				fragments, err := decodeSignatures(c.StringSlice("fragment-sig"))
				if err != nil {
					return err
				}
				assembled, err := sig.Assemble(fragments)
				if err != nil {
					return err
				}
				b, err := assembled.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Printf("signature: %s\n", hex.EncodeToString(b))
				return nil
			},
		},
		{
			Name:  "resign",
			Usage: "apply a re-signing key to a signature made under the corresponding designated key",
			Flags: []cli.Flag{&cli.StringFlag{Name: "resigning-key", Required: true, Usage: "hex-encoded re-signing key (ordinary private key)"}, sigFlag},
			Action: func(c *cli.Context) error {
				rk, err := decodeKey(c.String("resigning-key"))
				if err != nil {
					return err
				}
				signature, err := decodeSignature(c.String(sigFlag.Name))
				if err != nil {
					return err
				}
				resigned := rk.Resign(signature)
				b, err := resigned.MarshalBinary()
				if err != nil {
					return err
				}
				fmt.Printf("signature: %s\n", hex.EncodeToString(b))
				return nil
			},
		},
	}
	return app
}

func printKeyPair(sk key.PrivateKey) error {
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return err
	}
	pkBytes, err := sk.PublicKey().MarshalBinary()
	if err != nil {
		return err
	}
	fmt.Printf("private: %s\n", hex.EncodeToString(skBytes))
	fmt.Printf("public:  %s\n", hex.EncodeToString(pkBytes))
	return nil
}

func decodeKey(hexStr string) (key.PrivateKey, error) {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return key.PrivateKey{}, err
	}
	return key.UnmarshalPrivateKey(data)
}

func decodeKeys(hexStrs []string) ([]key.PrivateKey, error) {
	keys := make([]key.PrivateKey, len(hexStrs))
	for i, s := range hexStrs {
		k, err := decodeKey(s)
		if err != nil {
			return nil, fmt.Errorf("fragment %d: %w", i, err)
		}
		keys[i] = k
	}
	return keys, nil
}

func decodePublicKey(hexStr string) (key.PublicKey, error) {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return key.PublicKey{}, err
	}
	return key.UnmarshalPublicKey(data)
}

func decodeSignature(hexStr string) (sig.Signature, error) {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return sig.Signature{}, err
	}
	return sig.UnmarshalSignature(data)
}

func decodeSignatures(hexStrs []string) ([]sig.Signature, error) {
	sigs := make([]sig.Signature, len(hexStrs))
	for i, s := range hexStrs {
		decoded, err := decodeSignature(s)
		if err != nil {
			return nil, fmt.Errorf("fragment signature %d: %w", i, err)
		}
		sigs[i] = decoded
	}
	return sigs, nil
}

func decodePoint(group kyber.Group, hexStr string) (kyber.Point, error) {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return nil, err
	}
	p := group.Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("malformed message point: %w", err)
	}
	return p, nil
}
