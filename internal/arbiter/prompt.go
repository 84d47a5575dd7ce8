package arbiter

// BuildPrompt returns the comparison prompt that embeds both drafts.
func BuildPrompt(technicalDraft, plainDraft string) string {
	return `
Compare two documentation drafts:

[Draft A - PolyCoder+]
` + technicalDraft + `

[Draft B - OpenAI]
` + plainDraft + `

Decide which one is clearer, more correct, and more detailed.
Then rewrite the best one in professional English. Also add the brief concept of the technology to give some background knowledge to a non-technical person.
Don't write anything about Draft A or Draft B in the final output. Write technical summary in technical key.
Return JSON with keys: "technical", "professional". 
`
}
