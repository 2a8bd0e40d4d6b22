package session

import (
	"regexp"
	"strings"
)

// Tag labels a test case for subset selection and fixture policy.
type Tag string

const (
	TagSmoke     Tag = "smoke"
	TagAuth      Tag = "auth"
	TagLogin     Tag = "login"
	TagDashboard Tag = "dashboard"
	TagTrading   Tag = "trading"
	TagPortfolio Tag = "portfolio"
	TagTrades    Tag = "trades"
	TagWatchlist Tag = "watchlist"
)

// TestCase is one entry in the test plan: a test function name plus its tags.
type TestCase struct {
	Name string
	Tags []Tag
}

// HasTag reports whether the case carries tag.
func (tc TestCase) HasTag(tag Tag) bool {
	for _, t := range tc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Plan is the resolved test plan for a session. Test files register their
// cases at init time; before any browser resource is acquired the session
// inspects the plan (filtered by the runner's -test.run expression) to decide
// whether a pre-authenticated storage state is needed at all.
type Plan struct {
	cases []TestCase
}

// Register adds a test case to the plan.
func (p *Plan) Register(name string, tags ...Tag) {
	p.cases = append(p.cases, TestCase{Name: name, Tags: tags})
}

// Tags returns the tags registered for the named test. Subtest names are
// resolved to their top-level test. Unregistered names get no tags.
func (p *Plan) Tags(name string) []Tag {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	for _, tc := range p.cases {
		if tc.Name == name {
			return tc.Tags
		}
	}
	return nil
}

// Cases returns every registered case.
func (p *Plan) Cases() []TestCase {
	return p.cases
}

// Selected returns the cases matching runExpr, the value of the runner's
// -test.run flag. Only the top-level segment (before any '/') applies to
// test function names, and like the runner the match is unanchored. An empty
// or unparsable expression selects everything.
func (p *Plan) Selected(runExpr string) []TestCase {
	top := runExpr
	if i := strings.IndexByte(runExpr, '/'); i >= 0 {
		top = runExpr[:i]
	}
	if top == "" {
		return p.cases
	}
	re, err := regexp.Compile(top)
	if err != nil {
		return p.cases
	}
	var selected []TestCase
	for _, tc := range p.cases {
		if re.MatchString(tc.Name) {
			selected = append(selected, tc)
		}
	}
	return selected
}

// NeedsAuth reports whether any selected case lacks the login tag. Login
// tests exercise the form itself and never want a pre-authenticated session;
// everything else does.
func (p *Plan) NeedsAuth(runExpr string) bool {
	for _, tc := range p.Selected(runExpr) {
		if !tc.HasTag(TagLogin) {
			return true
		}
	}
	return false
}
