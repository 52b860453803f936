package mentor

import "net/url"

// JobLink is one external search-engine link.
type JobLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// JobLinkGroup groups links by category.
type JobLinkGroup struct {
	Category string    `json:"category"`
	Links    []JobLink `json:"links"`
}

// JobSearchLinks maps a language name to a fixed catalogue of external
// job-search URLs. Pure and deterministic; no network access.
func JobSearchLinks(language string) []JobLinkGroup {
	dev := url.QueryEscape(language + " developer")
	lang := url.QueryEscape(language)
	return []JobLinkGroup{
		{
			Category: "Job Boards",
			Links: []JobLink{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/jobs/search/?keywords=" + dev},
				{Name: "Indeed", URL: "https://www.indeed.com/jobs?q=" + dev},
				{Name: "Glassdoor", URL: "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=" + dev},
				{Name: "Dice", URL: "https://www.dice.com/jobs?q=" + dev},
			},
		},
		{
			Category: "Remote",
			Links: []JobLink{
				{Name: "We Work Remotely", URL: "https://weworkremotely.com/remote-jobs/search?term=" + lang},
				{Name: "Remote OK", URL: "https://remoteok.com/remote-jobs?search=" + lang},
				{Name: "Wellfound", URL: "https://wellfound.com/jobs?keywords=" + lang},
			},
		},
		{
			Category: "Freelance",
			Links: []JobLink{
				{Name: "Upwork", URL: "https://www.upwork.com/search/jobs/?q=" + lang},
				{Name: "Freelancer", URL: "https://www.freelancer.com/search/projects?q=" + lang},
			},
		},
	}
}
