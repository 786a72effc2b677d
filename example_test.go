package jobsift_test

import (
	"fmt"
	"log"

	"github.com/jobsift/jobsift"
)

func Example() {
	html := `<html><body>
<div data-automation-id="jobPostingDescription">About the Role: We are hiring a
platform engineer to build and operate the distributed systems behind our
product, with 3+ years of experience in Go and AWS. Responsibilities include
designing APIs, owning reliability, and mentoring. We offer competitive
compensation, benefits, and flexible remote work for every member of the team.</div>
</body></html>`

	ext := jobsift.New()
	result, err := ext.ExtractFromHTML(html, "acme.wd1.myworkdayjobs.com", nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Stage, result.Success)
	// Output: site_specific true
}

func ExampleNew() {
	ext := jobsift.New(
		jobsift.WithMinResultLength(200),
		jobsift.WithSiteSpecific(false),
	)
	_ = ext
	// Output:
}
