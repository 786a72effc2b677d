// Package test contains end-to-end extraction scenarios over realistic
// job-board pages: full documents with navigation, consent banners,
// metadata tables and legal footers surrounding the actual posting.
package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsift/jobsift"
)

// workdayPage mimics a Workday-hosted posting: stacked metadata
// label/value pairs, a title echo, a consent banner, and an EEO footer
// all wrapped around the description.
const workdayPage = `<html><body>
<nav><a href="/">Careers Home</a> <a href="/signin">Sign In</a> <a href="/search">Search for Jobs</a></nav>
<div class="cookie-consent">This site uses cookies to deliver our services and analyze traffic across all pages of the careers portal. Accept Decline</div>
<h1 data-automation-id="jobPostingHeader">Platform Engineering Intern</h1>
<div data-automation-id="jobPostingDescription" class="jobPostingDescription">
<p>2025 Platform Engineering Intern (Summer)</p>
<p>locations</p>
<p>San Francisco, CA</p>
<p>time type</p>
<p>Full time</p>
<p>posted on</p>
<p>Posted Today</p>
<p>job requisition id</p>
<p>R-98765</p>
<p>About the Role: We are building the payments platform that processes millions of transactions daily for businesses around the world.</p>
<p>Responsibilities:</p>
<p>- Design and build APIs used by thousands of engineering teams every day.</p>
<p>- Operate production services and participate in a friendly on-call rotation.</p>
<p>- Partner with senior engineers on architecture reviews and design documents.</p>
<p>Qualifications:</p>
<p>- Working toward a bachelor degree in computer science or a related field.</p>
<p>- 1+ years of experience with Python, AWS, or Docker through coursework or internships.</p>
<p>- Clear written communication and a habit of asking good questions.</p>
<p>We offer competitive compensation, benefits, housing assistance, and mentorship.</p>
<p>Acme is an equal opportunity employer.</p>
</div>
<footer>© 2024 Acme Inc. All rights reserved. Privacy Policy</footer>
</body></html>`

func TestWorkdayScenario(t *testing.T) {
	ext := jobsift.New()

	result, err := ext.ExtractFromHTML(workdayPage, "acme.wd5.myworkdayjobs.com", nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "site_specific", result.Stage)

	assert.True(t, strings.HasPrefix(result.Text, "About the Role:"), "got: %.100q", result.Text)
	assert.Contains(t, result.Text, "- Design and build APIs")
	assert.Contains(t, result.Text, "Qualifications:")

	// Metadata labels and their stacked values are gone.
	assert.NotContains(t, result.Text, "locations")
	assert.NotContains(t, result.Text, "time type")
	assert.NotContains(t, result.Text, "Posted Today")
	assert.NotContains(t, result.Text, "R-98765")

	// Title echo, consent banner and legal footer are gone.
	assert.NotContains(t, result.Text, "Intern (Summer)")
	assert.NotContains(t, result.Text, "cookies")
	assert.NotContains(t, result.Text, "equal opportunity")
	assert.NotContains(t, result.Text, "© 2024")

	assert.Equal(t, "Platform Engineering Intern", result.Title)
}

func TestGenericScenarioSamePage(t *testing.T) {
	// With an unknown hostname the same page goes through the generic
	// collect/score/rank path and lands on the same description.
	ext := jobsift.New()

	result, err := ext.ExtractFromHTML(workdayPage, "jobs.smallco.example", nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "generic", result.Stage)
	assert.True(t, strings.HasPrefix(result.Text, "About the Role:"))
	assert.NotContains(t, result.Text, "equal opportunity")
}

func TestScenarioDeterministic(t *testing.T) {
	ext := jobsift.New()

	var previous *jobsift.Result
	for i := 0; i < 3; i++ {
		result, err := ext.ExtractFromHTML(workdayPage, "acme.wd5.myworkdayjobs.com", nil)
		require.NoError(t, err)
		if previous != nil {
			assert.Equal(t, previous, result)
		}
		previous = result
	}
}

func TestCleaningOnlyRemoves(t *testing.T) {
	ext := jobsift.New()

	result, err := ext.ExtractFromHTML(workdayPage, "acme.wd5.myworkdayjobs.com", nil)
	require.NoError(t, err)

	assert.Less(t, len(result.Text), len(workdayPage))
}
