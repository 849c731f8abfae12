package form

import (
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// ErrorRule routes a server error message to a field when the lower-cased
// message contains any of Keywords.
type ErrorRule struct {
	Keywords []string
	Field    Field
}

// Rules are evaluated in order and the first match wins, so specific
// phrases ("aadhaar file") must precede their generic prefixes ("aadhaar").
var RegistrationRules = []ErrorRule{
	{Keywords: []string{"aadhar file", "aadhaar file", "aadhar document", "aadhaar document"}, Field: AadharFile},
	{Keywords: []string{"signature"}, Field: SignatureFile},
	{Keywords: []string{"email"}, Field: Email},
	{Keywords: []string{"phone"}, Field: Phone},
	{Keywords: []string{"aadhar", "aadhaar"}, Field: AadharNumber},
	{Keywords: []string{"first name", "firstname"}, Field: FirstName},
	{Keywords: []string{"last name", "lastname"}, Field: LastName},
	{Keywords: []string{"address"}, Field: Address},
	{Keywords: []string{"city"}, Field: City},
	{Keywords: []string{"state"}, Field: State},
	{Keywords: []string{"pincode", "pin code"}, Field: Pincode},
	{Keywords: []string{"date", "birth"}, Field: DateOfBirth},
	{Keywords: []string{"terms"}, Field: AgreeTerms},
}

var CopyTradingRules = []ErrorRule{
	{Keywords: []string{"aadhar file", "aadhaar file", "aadhar document", "aadhaar document"}, Field: AadharFile},
	{Keywords: []string{"signature"}, Field: SignatureFile},
	{Keywords: []string{"email"}, Field: Email},
	{Keywords: []string{"phone"}, Field: Phone},
	{Keywords: []string{"aadhar", "aadhaar"}, Field: AadharNumber},
	{Keywords: []string{"first name", "firstname"}, Field: FirstName},
	{Keywords: []string{"last name", "lastname"}, Field: LastName},
	{Keywords: []string{"address"}, Field: Address},
	{Keywords: []string{"city"}, Field: City},
	{Keywords: []string{"state"}, Field: State},
	{Keywords: []string{"pincode", "pin code"}, Field: Pincode},
	{Keywords: []string{"investment amount", "amount"}, Field: InvestmentAmount},
	{Keywords: []string{"goal"}, Field: InvestmentGoals},
	{Keywords: []string{"disclaimer"}, Field: DisclaimerAccepted},
	{Keywords: []string{"risk"}, Field: RiskWarningAccepted},
	{Keywords: []string{"date", "birth"}, Field: DateOfBirth},
	{Keywords: []string{"terms"}, Field: TermsAccepted},
}

// MapServerError returns the field a message belongs to, or General.
func MapServerError(rules []ErrorRule, msg string) Field {
	lower := strings.ToLower(msg)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Field
			}
		}
	}
	return General
}

// DuplicateMessage replaces the backend's unique-index errors.
const DuplicateMessage = "This email, phone number, or Aadhaar number is already registered."

// IsDuplicate reports whether a failure is a unique-identity conflict.
func IsDuplicate(status int, msg string) bool {
	if status == http.StatusConflict {
		return true
	}
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "duplicate") ||
		strings.Contains(msg, "E11000") ||
		strings.Contains(lower, "already registered") ||
		strings.Contains(lower, "already exists")
}

// ServerErrors decodes the "errors" member of a failure response and routes
// each message to a field. Accepted shapes:
//
//	["Email is invalid", ...]
//	[{"path": "email", "msg": "..."}, ...]
//	{"email": "...", "phone": ["...", ...]}
//
// Keys naming a field of s are used directly; anything else goes through
// the keyword rules. The first message per field is kept.
func ServerErrors(s *Schema, raw json.RawMessage) map[Field]string {
	out := map[Field]string{}
	if len(raw) == 0 {
		return out
	}

	put := func(key, msg string) {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			return
		}
		f := Field(key)
		if _, known := s.Fields[f]; !known {
			f = MapServerError(s.Rules, msg)
		}
		if _, taken := out[f]; !taken {
			out[f] = msg
		}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			var str string
			if json.Unmarshal(item, &str) == nil {
				put("", str)
				continue
			}
			var obj struct {
				Path    string `json:"path"`
				Param   string `json:"param"`
				Field   string `json:"field"`
				Msg     string `json:"msg"`
				Message string `json:"message"`
			}
			if json.Unmarshal(item, &obj) == nil {
				put(firstOf(obj.Path, obj.Param, obj.Field), firstOf(obj.Msg, obj.Message))
			}
		}
		return out
	}

	var byField map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byField); err == nil {
		for _, key := range slices.Sorted(maps.Keys(byField)) {
			v := byField[key]
			var str string
			if json.Unmarshal(v, &str) == nil {
				put(key, str)
				continue
			}
			var strs []string
			if json.Unmarshal(v, &strs) == nil && len(strs) > 0 {
				put(key, strs[0])
				continue
			}
			var obj struct {
				Message string `json:"message"`
				Msg     string `json:"msg"`
			}
			if json.Unmarshal(v, &obj) == nil {
				put(key, firstOf(obj.Message, obj.Msg))
			}
		}
		return out
	}

	var str string
	if json.Unmarshal(raw, &str) == nil {
		put("", str)
	}
	return out
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
