package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/form"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	personalStep = []string{"Asha", "Rao", "asha@example.com", "9876543210", "1990-05-15"}
	addressStep  = []string{"12 MG Road, Indiranagar", "Bengaluru", "Karnataka", "560038"}
	documentStep = []string{"2345 6789 0123", "/tmp/aadhar.png", "/tmp/sign.png", "y", "n"}
)

func join(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestEnroll_SubmitsRegistration(t *testing.T) {
	stubReadDocument(t)
	api := &fakeAPI{submitRes: &client.SubmitResult{Message: "Registration received"}}
	a, out := newTestApp(t, api, join(personalStep, addressStep, documentStep)...)

	require.NoError(t, a.Enroll(context.Background(), "2"))

	require.Equal(t, 1, api.submitCalls)
	assert.Equal(t, "/api/registration/submit", api.lastEndpoint)
	assert.Equal(t, "Advanced Phase", api.lastFields["courseName"])
	assert.Equal(t, "234567890123", api.lastFields["aadharNumber"])
	assert.Equal(t, "true", api.lastFields["agreeTerms"])
	assert.Equal(t, "false", api.lastFields["agreeMarketing"])
	require.Len(t, api.lastFiles, 2)
	assert.Equal(t, "aadharFile", api.lastFiles[0].Field)
	assert.Equal(t, "aadhar.png", api.lastFiles[0].Attachment.Name)
	assert.Contains(t, out.String(), "Registration received")
	assert.Contains(t, out.String(), "Step 3 of 3: Documents & Consent")
}

func TestEnroll_StepErrorsReprompt(t *testing.T) {
	stubReadDocument(t)
	api := &fakeAPI{}
	lines := join(
		[]string{"Asha", "Rao", "asha@example.com", "12345", "1990-05-15"},
		[]string{"", "", "", "9876543210", ""},
		addressStep, documentStep,
	)
	a, out := newTestApp(t, api, lines...)

	require.NoError(t, a.Enroll(context.Background(), "Foundation Phase"))

	assert.Contains(t, out.String(), "Phone number must be 10 digits")
	require.Equal(t, 1, api.submitCalls)
	assert.Equal(t, "9876543210", api.lastFields["phone"])
	assert.Equal(t, "Asha", api.lastFields["firstName"])
	assert.Contains(t, out.String(), "Registration submitted successfully!")
}

func TestEnroll_BackAndCancel(t *testing.T) {
	api := &fakeAPI{}
	lines := join(personalStep, []string{":back"}, []string{"", "", "", "", ""}, []string{":cancel"})
	a, out := newTestApp(t, api, lines...)

	require.NoError(t, a.Enroll(context.Background(), "1"))

	assert.Zero(t, api.submitCalls)
	assert.Contains(t, out.String(), "Cancelled.")
	assert.Equal(t, 2, countSubstr(out.String(), "Step 1 of 3"))
}

func TestEnroll_UnknownCourse(t *testing.T) {
	a, _ := newTestApp(t, &fakeAPI{})
	err := a.Enroll(context.Background(), "Crypto Phase")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestEnroll_PicksCourseInteractively(t *testing.T) {
	a, out := newTestApp(t, &fakeAPI{}, "master phase", ":cancel")
	require.NoError(t, a.Enroll(context.Background(), ""))
	assert.Contains(t, out.String(), "Enrolling in Master Phase")
}

func TestEnroll_RejectedFileKeepsAsking(t *testing.T) {
	orig := readDocument
	calls := 0
	readDocument = func(path string) (string, string, []byte, error) {
		calls++
		if calls == 1 {
			return "notes.txt", "text/plain", []byte("hello"), nil
		}
		return "aadhar.png", "image/png", pngBytes, nil
	}
	t.Cleanup(func() { readDocument = orig })

	api := &fakeAPI{}
	lines := join(personalStep, addressStep,
		[]string{"2345 6789 0123", "/tmp/notes.txt", "/tmp/aadhar.png", "/tmp/sign.png", "y", "n"})
	a, out := newTestApp(t, api, lines...)

	require.NoError(t, a.Enroll(context.Background(), "1"))
	assert.Contains(t, out.String(), "Aadhaar file must be JPG, PNG, or PDF")
	assert.Equal(t, 1, api.submitCalls)
}

func TestEnroll_ServerRejectsThenGiveUp(t *testing.T) {
	stubReadDocument(t)
	api := &fakeAPI{submitErr: &client.ServerError{StatusCode: 409, Message: "Email already registered"}}
	lines := join(personalStep, addressStep, documentStep, []string{"n"})
	a, out := newTestApp(t, api, lines...)

	err := a.Enroll(context.Background(), "1")
	require.ErrorIs(t, err, common.ErrServer)
	assert.Contains(t, out.String(), form.DuplicateMessage)
	assert.Equal(t, 1, api.submitCalls)
}

func TestCopyTrade_Submits(t *testing.T) {
	stubReadDocument(t)
	api := &fakeAPI{}
	lines := join(
		[]string{"y", "y"},
		personalStep[:5], []string{"2345 6789 0123"}, addressStep,
		[]string{"₹50,000", "Steady long term growth with low drawdowns", "", "/tmp/aadhar.png", "/tmp/sign.png", "y"},
	)
	a, out := newTestApp(t, api, lines...)

	require.NoError(t, a.CopyTrade(context.Background()))

	require.Equal(t, 1, api.submitCalls)
	assert.Equal(t, "/api/trading-form/applications", api.lastEndpoint)
	assert.Equal(t, "50000", api.lastFields["investmentAmount"])
	assert.Equal(t, "Steady long term growth with low drawdowns", api.lastFields["investmentGoals"])
	assert.Equal(t, "true", api.lastFields["riskWarningAccepted"])
	assert.Contains(t, out.String(), "Copy trading application submitted successfully!")
}

func countSubstr(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
