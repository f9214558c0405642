package service

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the default minimum accepted password length.
const MinPasswordLength = 8

// PasswordService hashes and verifies passwords and enforces the strength
// policy. The work factor is configurable so deployments can raise it without
// code changes; NeedsRehash drives lazy migration of old hashes.
type PasswordService struct {
	cost int
}

func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

func (p *PasswordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (p *PasswordService) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NeedsRehash reports whether the stored hash was produced with a lower work
// factor than currently configured. Unparseable hashes count as stale.
func (p *PasswordService) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return cost < p.cost
}

// HashRandomPlaceholder produces a hash of a random secret nobody knows.
// Federated accounts get one so the password column is never empty yet can
// never match a login attempt.
func (p *PasswordService) HashRandomPlaceholder() (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return p.Hash(base64.RawURLEncoding.EncodeToString(b))
}

// strengthRule is one entry of the declarative password policy. Adding a rule
// here is the only change needed to tighten the policy.
type strengthRule struct {
	name string
	ok   func(password string) bool
}

func strengthRules(minLength int) []strengthRule {
	return []strengthRule{
		{"min_length", func(pw string) bool { return len([]rune(pw)) >= minLength }},
		{"uppercase", containsClass(unicode.IsUpper)},
		{"lowercase", containsClass(unicode.IsLower)},
		{"digit", containsClass(unicode.IsDigit)},
		{"symbol", func(pw string) bool {
			for _, r := range pw {
				if unicode.IsPunct(r) || unicode.IsSymbol(r) {
					return true
				}
			}
			return false
		}},
	}
}

func containsClass(class func(rune) bool) func(string) bool {
	return func(pw string) bool {
		for _, r := range pw {
			if class(r) {
				return true
			}
		}
		return false
	}
}

func (p *PasswordService) IsStrong(password string, minLength int) bool {
	if minLength <= 0 {
		minLength = MinPasswordLength
	}
	for _, rule := range strengthRules(minLength) {
		if !rule.ok(password) {
			return false
		}
	}
	return true
}
