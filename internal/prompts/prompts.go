package prompts

import (
	"fmt"

	"github.com/tmc/langchaingo/prompts"

	"github.com/xavierca1/lead-mailer/internal/entity"
)

const Subject = `Imagine you are the best copywriter in the world, crafting irresistible email subject lines.

Guidelines:
- Personalize the subject line using "{{.job_title}}" and "{{.job_company_name}}" and "{{.industry}}" for a personal touch.
- Match this writing style: "{{.writing_style}}".
- Keep it casual, conversational, and under 7 words.
- Examples: "{{.first_name}}, take a look!" or "Exciting update for {{.job_company_name}}".
- Avoid emojis, cliches, or overused phrases.
- Do not add any extra explanation to the response. Just give the output.

Output Format:
- Respond ONLY with a JSON object like: {"subject": "..."}`

const Body = `Imagine you are the best copywriter in the world, crafting an engaging email opening.

Guidelines:
- The email subject is "{{.subject}}". Keep the same tone.
- Personalize the first paragraph using "{{.education_summary}}", or combine "{{.job_title}}" and "{{.job_company_name}}" for relevance.
- The lead works in "{{.industry}}".
- Also, consider the targeting persona that includes unique selling point "{{.usp}}" and "{{.customer_support}}".
- Remember to always include the first name i.e. {{.first_name}}.
- Write in a casual, conversational, professional style, and under 30 words.
- Example: "Hi {{.first_name}}, I saw your work at {{.job_company_name}} and had to reach out."
- Avoid emojis, cliches, or generic language.
- Do not add any extra explanation to the response. Just give the output.

Output Format:
- Respond ONLY with a JSON object like: {"content": "..."}`

// Input variable names shared by both templates.
const (
	VarSubject          = "subject"
	VarEducationSummary = "education_summary"
	VarJobTitle         = "job_title"
	VarJobCompanyName   = "job_company_name"
	VarFirstName        = "first_name"
	VarFullName         = "full_name"
	VarWritingStyle     = "writing_style"
	VarUSP              = "usp"
	VarCustomerSupport  = "customer_support"
	VarIndustry         = "industry"
)

var (
	subjectTemplate = prompts.NewPromptTemplate(Subject, []string{
		VarJobTitle, VarJobCompanyName, VarIndustry, VarFirstName, VarWritingStyle,
	})
	bodyTemplate = prompts.NewPromptTemplate(Body, []string{
		VarSubject, VarEducationSummary, VarJobTitle, VarJobCompanyName,
		VarFirstName, VarUSP, VarCustomerSupport, VarIndustry,
	})
)

// InputsFromRequest builds the variables shared by both stages. Unanswered
// persona questions render as empty strings.
func InputsFromRequest(req *entity.EmailRequest) map[string]any {
	icp := req.Persona.ICPQuestions
	return map[string]any{
		VarEducationSummary: req.Lead.Education.Summary,
		VarJobTitle:         req.Lead.JobTitle,
		VarJobCompanyName:   req.Lead.JobCompanyName,
		VarFirstName:        req.Lead.FirstName,
		VarFullName:         req.Lead.FullName,
		VarWritingStyle:     entity.Value(icp.CustomerSupport),
		VarUSP:              entity.Value(icp.USP),
		VarCustomerSupport:  entity.Value(icp.CustomerSupport),
		VarIndustry:         req.Lead.Industry,
	}
}

func RenderSubject(inputs map[string]any) (string, error) {
	return render(subjectTemplate, inputs)
}

// RenderBody renders the opening paragraph prompt. The subject produced by
// the first stage must already be present under VarSubject.
func RenderBody(inputs map[string]any) (string, error) {
	if _, ok := inputs[VarSubject]; !ok {
		return "", fmt.Errorf("missing %q input", VarSubject)
	}
	return render(bodyTemplate, inputs)
}

func render(tmpl prompts.PromptTemplate, inputs map[string]any) (string, error) {
	for _, v := range tmpl.InputVariables {
		if _, ok := inputs[v]; !ok {
			return "", fmt.Errorf("missing %q input", v)
		}
	}
	out, err := tmpl.Format(inputs)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out, nil
}

// WithSubject copies inputs and adds the generated subject.
func WithSubject(inputs map[string]any, subject string) map[string]any {
	out := make(map[string]any, len(inputs)+1)
	for k, v := range inputs {
		out[k] = v
	}
	out[VarSubject] = subject
	return out
}
