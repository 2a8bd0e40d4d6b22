package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPlan() *Plan {
	p := &Plan{}
	p.Register("TestLoginWithValidCredentials", TagAuth, TagLogin, TagSmoke)
	p.Register("TestLoginWithInvalidCredentials", TagAuth, TagLogin)
	p.Register("TestDashboardLoads", TagDashboard, TagSmoke)
	p.Register("TestExecuteBuyTrade", TagTrading)
	return p
}

func TestPlanSelected(t *testing.T) {
	p := newTestPlan()

	tests := []struct {
		name    string
		runExpr string
		want    []string
	}{
		{
			name:    "empty expression selects all",
			runExpr: "",
			want: []string{
				"TestLoginWithValidCredentials",
				"TestLoginWithInvalidCredentials",
				"TestDashboardLoads",
				"TestExecuteBuyTrade",
			},
		},
		{
			name:    "prefix match",
			runExpr: "TestLogin",
			want:    []string{"TestLoginWithValidCredentials", "TestLoginWithInvalidCredentials"},
		},
		{
			name:    "unanchored match",
			runExpr: "BuyTrade",
			want:    []string{"TestExecuteBuyTrade"},
		},
		{
			name:    "subtest segment ignored",
			runExpr: "TestDashboardLoads/header",
			want:    []string{"TestDashboardLoads"},
		},
		{
			name:    "unparsable expression selects all",
			runExpr: "Test[",
			want: []string{
				"TestLoginWithValidCredentials",
				"TestLoginWithInvalidCredentials",
				"TestDashboardLoads",
				"TestExecuteBuyTrade",
			},
		},
		{
			name:    "no match selects none",
			runExpr: "TestNothingLikeThis$",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, tc := range p.Selected(tt.runExpr) {
				got = append(got, tc.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanNeedsAuth(t *testing.T) {
	p := newTestPlan()

	tests := []struct {
		name    string
		runExpr string
		want    bool
	}{
		{name: "full run needs auth", runExpr: "", want: true},
		{name: "login-only run does not", runExpr: "TestLogin", want: false},
		{name: "dashboard run does", runExpr: "TestDashboard", want: true},
		{name: "empty selection does not", runExpr: "TestNothingLikeThis$", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.NeedsAuth(tt.runExpr))
		})
	}
}

func TestPlanTags(t *testing.T) {
	p := newTestPlan()

	assert.Equal(t, []Tag{TagTrading}, p.Tags("TestExecuteBuyTrade"))
	assert.Equal(t, []Tag{TagDashboard, TagSmoke}, p.Tags("TestDashboardLoads/subtest"))
	assert.Nil(t, p.Tags("TestUnknown"))
}

func TestTestCaseHasTag(t *testing.T) {
	tc := TestCase{Name: "TestX", Tags: []Tag{TagSmoke, TagAuth}}
	assert.True(t, tc.HasTag(TagSmoke))
	assert.False(t, tc.HasTag(TagTrading))
}
