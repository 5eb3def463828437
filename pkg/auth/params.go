package auth

import (
	"sort"
	"strconv"
	"strings"
)

// Reserved parameter names added to every signed REST request.
// Callers must not supply extra parameters under these keys; a
// collision produces a well-formed but unverifiable signature.
const (
	paramAuthKey       = "auth_key"
	paramAuthTimestamp = "auth_timestamp"
	paramAuthVersion   = "auth_version"
	paramAuthSignature = "auth_signature"
	paramBodyMD5       = "body_md5"

	authVersion = "1.0"
)

// BuildAuthParams canonicalizes and signs a REST request.
//
// It merges extra with the four reserved auth parameters, sorts the
// set by key in byte-wise lexicographic order, and signs the three
// newline-joined segments METHOD, path and the sorted &-joined
// key=value query string. The ordering and the absence of
// percent-encoding are part of the wire contract: the verifying
// server re-derives the identical byte string independently.
//
// The returned list is the sorted parameter set with auth_signature
// prepended. The timestamp is caller-supplied so the function stays
// pure; no validation of method or path is performed, malformed
// input is signed as-is and fails verification server-side.
func BuildAuthParams(creds *Credentials, method, path string, extra Params, body []byte, timestamp int64) Params {
	params := make(Params, 0, len(extra)+5)
	params = append(params, extra...)
	params = append(params,
		Param{paramAuthKey, creds.Key},
		Param{paramAuthTimestamp, strconv.FormatInt(timestamp, 10)},
		Param{paramAuthVersion, authVersion},
		Param{paramBodyMD5, BodyChecksum(body)},
	)

	// Byte-wise lexicographic order by key. Go's string comparison is
	// already byte-wise, but the comparator is spelled out here because
	// the ordering is a wire contract, not a library default.
	sort.Slice(params, func(i, j int) bool {
		return params[i].Key < params[j].Key
	})

	signingInput := method + "\n" + path + "\n" + params.canonicalQueryString()
	signature := Sign([]byte(creds.Secret), []byte(signingInput))

	return append(Params{{paramAuthSignature, signature}}, params...)
}

// canonicalQueryString renders the parameters as &-joined key=value
// pairs in their current order, with no percent-encoding.
func (p Params) canonicalQueryString() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(param.Key)
		sb.WriteByte('=')
		sb.WriteString(param.Value)
	}
	return sb.String()
}
