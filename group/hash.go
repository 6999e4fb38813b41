package group

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/privacybydesign/egcrypto/internal/common"
)

const nullToken = "null"

// CryptoHashable is implemented by composite values, such as ciphertexts,
// that enter a hash as a single token.
type CryptoHashable interface {
	CryptoHashString() string
}

// HashElements hashes a sequence of items into an ElementModQ. Every item
// becomes a token: elements their uppercase base16 encoding, strings
// themselves, integers their decimal form, nil "null", and slices the base16
// of their own nested hash. The tokens are joined as "|t1|t2|...|", hashed
// with SHA-256 and reduced mod Q. Hashing no items is the same as hashing a
// single nil. Items of any other type cause a panic.
func (ctx *Context) HashElements(items ...interface{}) *ElementModQ {
	tokens := make([]string, 0, len(items))
	if len(items) == 0 {
		tokens = append(tokens, nullToken)
	}
	for _, item := range items {
		tokens = append(tokens, ctx.hashToken(item))
	}
	digest := common.HashDelimited(tokens)
	return ctx.SafeBinaryToElementModQ(digest[:])
}

func (ctx *Context) hashToken(item interface{}) string {
	switch x := item.(type) {
	case nil:
		return nullToken
	case *ElementModP:
		if x == nil {
			return nullToken
		}
		return x.Base16()
	case *ElementModQ:
		if x == nil {
			return nullToken
		}
		return x.Base16()
	case CryptoHashable:
		if v := reflect.ValueOf(x); v.Kind() == reflect.Ptr && v.IsNil() {
			return nullToken
		}
		return x.CryptoHashString()
	case string:
		return x
	case []byte:
		return strings.ToUpper(hex.EncodeToString(x))
	case *big.Int:
		if x == nil {
			return nullToken
		}
		return x.String()
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case []interface{}:
		return ctx.nestedToken(x)
	case []*ElementModP:
		nested := make([]interface{}, len(x))
		for i := range x {
			nested[i] = x[i]
		}
		return ctx.nestedToken(nested)
	case []*ElementModQ:
		nested := make([]interface{}, len(x))
		for i := range x {
			nested[i] = x[i]
		}
		return ctx.nestedToken(nested)
	case []string:
		nested := make([]interface{}, len(x))
		for i := range x {
			nested[i] = x[i]
		}
		return ctx.nestedToken(nested)
	default:
		panic(fmt.Sprintf("cannot hash value of type %T", item))
	}
}

func (ctx *Context) nestedToken(items []interface{}) string {
	if len(items) == 0 {
		return nullToken
	}
	return ctx.HashElements(items...).Base16()
}
