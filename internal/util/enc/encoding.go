package enc

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"sort"
)

// Encoding identifies one of the supported transforms. The set is closed: every value is declared below and
// described by exactly one entry in the registry. The zero value is not a valid encoding and is used by the
// command line to detect an encoding which has not been provided.
type Encoding int

const (
	Raw Encoding = iota + 1
	ASCII
	UTF8
	Hex
	Base32Rfc4648
	Base32Rfc4648NoPadding
	Base32Crockford
	Base64Standard
	Base64StandardNoPadding
	Base64UrlSafe
	Base64UrlSafeNoPadding
	Base64Bcrypt
	Base64Binhex
	Base64Crypt
	Base64ImapMutf7
	Base85
	Base91
	Base128
)

// Family groups encodings which share the same decoding and encoding rules.
type Family int

const (
	FamilyRaw Family = iota + 1
	FamilyText
	FamilyHex
	FamilyBase32
	FamilyBase64
	FamilyBase85
	FamilyBase91
	FamilyBase128
)

func (f Family) String() string {
	switch f {
	case FamilyRaw:
		return "raw"
	case FamilyText:
		return "text"
	case FamilyHex:
		return "hex"
	case FamilyBase32:
		return "base32"
	case FamilyBase64:
		return "base64"
	case FamilyBase85:
		return "base85"
	case FamilyBase91:
		return "base91"
	case FamilyBase128:
		return "base128"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

const (
	crockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	bcryptAlphabet    = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	binhexAlphabet    = "!\"#$%&'()*+,-0123456789@ABCDEFGHIJKLMNPQRSTUVXYZ[`abcdehijklmpqr"
	cryptAlphabet     = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	imapAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,"
)

// Definition is the registry entry for one Encoding.
type Definition struct {
	Encoding    Encoding
	Name        string   // canonical name, part of the public command line contract
	Aliases     []string // additional names accepted by Parse
	Family      Family
	Description string
	// Lossless is true when every byte buffer survives an encode / decode round trip.
	Lossless bool

	encoder Encoder
}

// Encoder returns the transform configured for this entry
func (d *Definition) Encoder() Encoder {
	return d.encoder
}

// registry is ordered the way encodings are presented to the user. It is never modified after package
// initialization.
var registry = []*Definition{
	{
		Encoding:    Raw,
		Name:        "raw",
		Family:      FamilyRaw,
		Description: "Bytes as they are, no validation",
		Lossless:    true,
		encoder:     &RawEncoder{},
	},
	{
		Encoding:    ASCII,
		Name:        "ascii",
		Family:      FamilyText,
		Description: "7-bit ASCII text",
		encoder:     &AsciiEncoder{},
	},
	{
		Encoding:    UTF8,
		Name:        "utf8",
		Family:      FamilyText,
		Description: "UTF-8 text",
		encoder:     &Utf8Encoder{},
	},
	{
		Encoding:    Hex,
		Name:        "hex",
		Family:      FamilyHex,
		Description: "Lowercase hexadecimal, two digits per byte",
		Lossless:    true,
		encoder:     &HexEncoder{},
	},
	{
		Encoding:    Base32Rfc4648,
		Name:        "base32",
		Aliases:     []string{"base32:rfc4648"},
		Family:      FamilyBase32,
		Description: "RFC 4648 base32, padded",
		Lossless:    true,
		encoder:     NewBase32Encoder(Base32Rfc4648, base32.StdEncoding, false),
	},
	{
		Encoding:    Base32Rfc4648NoPadding,
		Name:        "base32|",
		Aliases:     []string{"base32:rfc4648|"},
		Family:      FamilyBase32,
		Description: "RFC 4648 base32, unpadded",
		Lossless:    true,
		encoder:     NewBase32Encoder(Base32Rfc4648NoPadding, base32.StdEncoding.WithPadding(base32.NoPadding), false),
	},
	{
		Encoding:    Base32Crockford,
		Name:        "base32:crockford",
		Family:      FamilyBase32,
		Description: "Crockford's base32, unpadded",
		Lossless:    true,
		encoder: NewBase32Encoder(Base32Crockford,
			base32.NewEncoding(crockfordAlphabet).WithPadding(base32.NoPadding), true),
	},
	{
		Encoding:    Base64Standard,
		Name:        "base64",
		Aliases:     []string{"base64:standard"},
		Family:      FamilyBase64,
		Description: "RFC 4648 base64, padded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64Standard, base64.StdEncoding),
	},
	{
		Encoding:    Base64StandardNoPadding,
		Name:        "base64|",
		Aliases:     []string{"base64:standard|"},
		Family:      FamilyBase64,
		Description: "RFC 4648 base64, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64StandardNoPadding, base64.RawStdEncoding),
	},
	{
		Encoding:    Base64UrlSafe,
		Name:        "base64:url",
		Family:      FamilyBase64,
		Description: "RFC 4648 URL and filename safe base64, padded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64UrlSafe, base64.URLEncoding),
	},
	{
		Encoding:    Base64UrlSafeNoPadding,
		Name:        "base64:url|",
		Family:      FamilyBase64,
		Description: "RFC 4648 URL and filename safe base64, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64UrlSafeNoPadding, base64.RawURLEncoding),
	},
	{
		Encoding:    Base64Bcrypt,
		Name:        "base64:bcrypt",
		Family:      FamilyBase64,
		Description: "bcrypt base64 alphabet, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64Bcrypt, base64.NewEncoding(bcryptAlphabet).WithPadding(base64.NoPadding)),
	},
	{
		Encoding:    Base64Binhex,
		Name:        "base64:binhex",
		Family:      FamilyBase64,
		Description: "BinHex 4.0 base64 alphabet, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64Binhex, base64.NewEncoding(binhexAlphabet).WithPadding(base64.NoPadding)),
	},
	{
		Encoding:    Base64Crypt,
		Name:        "base64:crypt",
		Family:      FamilyBase64,
		Description: "crypt(3) base64 alphabet, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64Crypt, base64.NewEncoding(cryptAlphabet).WithPadding(base64.NoPadding)),
	},
	{
		Encoding:    Base64ImapMutf7,
		Name:        "base64:imap",
		Family:      FamilyBase64,
		Description: "IMAP modified UTF-7 base64 alphabet, unpadded",
		Lossless:    true,
		encoder:     NewBase64Encoder(Base64ImapMutf7, base64.NewEncoding(imapAlphabet).WithPadding(base64.NoPadding)),
	},
	{
		Encoding:    Base85,
		Name:        "base85",
		Family:      FamilyBase85,
		Description: "Adobe ascii85, without delimiters",
		Lossless:    true,
		encoder:     &Base85Encoder{},
	},
	{
		Encoding:    Base91,
		Name:        "base91",
		Family:      FamilyBase91,
		Description: "basE91",
		Lossless:    true,
		encoder:     &Base91Encoder{},
	},
	{
		Encoding:    Base128,
		Name:        "base128",
		Family:      FamilyBase128,
		Description: "7 bits per output byte, sort order preserving",
		Lossless:    true,
		encoder:     &Base128Encoder{},
	},
}

var byEncoding map[Encoding]*Definition
var byName map[string]Encoding

func init() {
	byEncoding = make(map[Encoding]*Definition, len(registry))
	byName = make(map[string]Encoding, len(registry)*2)
	for _, d := range registry {
		if _, ok := byEncoding[d.Encoding]; ok {
			panic(fmt.Sprintf("encoding %d registered twice", int(d.Encoding)))
		}
		byEncoding[d.Encoding] = d
		for _, name := range append([]string{d.Name}, d.Aliases...) {
			if _, ok := byName[name]; ok {
				panic(fmt.Sprintf("encoding name %q registered twice", name))
			}
			byName[name] = d.Encoding
		}
	}
}

// All returns registry entries in presentation order.
func All() []*Definition {
	res := make([]*Definition, len(registry))
	copy(res, registry)
	return res
}

// Names returns every string accepted by Parse, canonical names and aliases, sorted.
func Names() []string {
	res := make([]string, 0, len(byName))
	for name := range byName {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Lookup returns the registry entry for the given encoding or nil if the value is not a known encoding.
func Lookup(e Encoding) *Definition {
	return byEncoding[e]
}

// Parse resolves a canonical name or an alias. Matching is exact and case-sensitive.
func Parse(name string) (Encoding, error) {
	if e, ok := byName[name]; ok {
		return e, nil
	}
	return 0, &Error{
		Kind:   KindUnknownEncoding,
		Offset: -1,
		Value:  name,
	}
}

// MustParse is like Parse but panics on unknown names. Intended for tests and static tables.
func MustParse(name string) Encoding {
	e, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Valid returns true if the value is a registered encoding
func (e Encoding) Valid() bool {
	_, ok := byEncoding[e]
	return ok
}

// String returns the canonical name, never an alias.
func (e Encoding) String() string {
	if d, ok := byEncoding[e]; ok {
		return d.Name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}
