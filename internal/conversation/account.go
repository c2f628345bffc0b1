package conversation

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/bafoka-network/voice-assistant/internal/extract"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/prompts"
)

// accountFlow registers a new member: name, age, sex and groupement are
// collected in order, summarized for confirmation, and any field can be
// revised before the account is created.
type accountFlow struct {
	flowBase
}

func (f *accountFlow) Start(ctx context.Context) string {
	if f.state.AccountID != "" {
		return f.general("already_has_account")
	}

	f.state.StartFlow(ports.FlowAccountCreation, stepAskName)
	return f.prompt("start")
}

func (f *accountFlow) Process(ctx context.Context, input string) (string, bool) {
	switch f.state.FlowStep {
	case stepAskName:
		return f.processName(input)
	case stepAskAge:
		return f.processAge(input)
	case stepAskSex:
		return f.processSex(input)
	case stepAskGroupement:
		return f.processGroupement(input)
	case stepConfirm:
		return f.processConfirmation(input)
	case stepWhatToChange:
		return f.processWhatToChange(input)
	}
	return "", false
}

func (f *accountFlow) processName(input string) (string, bool) {
	name, ok := extract.Name(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_name"), false
	}

	f.state.AddData("full_name", name)
	if f.revising() {
		return f.backToConfirm()
	}

	f.state.NextStep(stepAskAge)
	return f.promptVars("ask_age", map[string]string{"name": name}), false
}

var agePattern = regexp.MustCompile(`\d{1,3}`)

func (f *accountFlow) processAge(input string) (string, bool) {
	age, ok := parseAge(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_age"), false
	}
	if age < 18 {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("underage"), false
	}

	f.state.AddData("age", strconv.Itoa(age))
	if f.revising() {
		return f.backToConfirm()
	}

	f.state.NextStep(stepAskSex)
	return f.prompt("ask_sex"), false
}

// parseAge accepts a plausible spoken age, so "25", "25 years old" and
// "j'ai 25 ans" all work.
func parseAge(input string) (int, bool) {
	m := agePattern.FindString(input)
	if m == "" {
		return 0, false
	}
	age, err := strconv.Atoi(m)
	if err != nil || age < 10 || age > 120 {
		return 0, false
	}
	return age, true
}

func (f *accountFlow) processSex(input string) (string, bool) {
	sex, ok := parseSex(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_sex"), false
	}

	f.state.AddData("sex", sex)
	if f.revising() {
		return f.backToConfirm()
	}

	f.state.NextStep(stepAskGroupement)
	return f.prompt("ask_groupement"), false
}

// parseSex normalizes EN and FR wordings. "female" is checked first
// because it contains "male".
func parseSex(input string) (string, bool) {
	lowered := strings.ToLower(input)
	switch {
	case strings.Contains(lowered, "female"),
		strings.Contains(lowered, "femme"),
		strings.Contains(lowered, "woman"):
		return "female", true
	case strings.Contains(lowered, "male"),
		strings.Contains(lowered, "homme"),
		strings.Contains(lowered, "man"):
		return "male", true
	}
	return "", false
}

func (f *accountFlow) processGroupement(input string) (string, bool) {
	g, ok := prompts.FindGroupement(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_groupement"), false
	}

	f.state.AddData("groupement_id", strconv.Itoa(g.ID))
	f.state.AddData("groupement_name", g.Name)

	return f.backToConfirm()
}

func (f *accountFlow) processConfirmation(input string) (string, bool) {
	confirmed, recognized := extract.IsConfirmation(input)
	if recognized && confirmed {
		f.state.NextStep(stepComplete)
		return "", true
	}
	if recognized {
		f.state.NextStep(stepWhatToChange)
		return f.prompt("what_to_change"), false
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	return f.prompt("confirm_prompt"), false
}

func (f *accountFlow) processWhatToChange(input string) (string, bool) {
	lowered := strings.ToLower(input)

	switch {
	case strings.Contains(lowered, "name") || strings.Contains(lowered, "nom"):
		f.startRevision(stepAskName)
		return f.prompt("change_name"), false
	case strings.Contains(lowered, "age") || strings.Contains(lowered, "âge"):
		f.startRevision(stepAskAge)
		return f.prompt("change_age"), false
	case strings.Contains(lowered, "sex"):
		f.startRevision(stepAskSex)
		return f.prompt("change_sex"), false
	case strings.Contains(lowered, "group"):
		f.startRevision(stepAskGroupement)
		return f.prompt("change_groupement"), false
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	return f.prompt("what_to_change"), false
}

func (f *accountFlow) startRevision(step string) {
	f.state.AddData("revising", "1")
	f.state.NextStep(step)
}

func (f *accountFlow) revising() bool {
	return f.state.CollectedData["revising"] == "1"
}

// backToConfirm shows the summary card once all fields are present.
func (f *accountFlow) backToConfirm() (string, bool) {
	f.state.DropData("revising")
	f.state.NextStep(stepConfirm)

	return f.promptVars("confirm", map[string]string{
		"name":            f.state.CollectedData["full_name"],
		"age":             f.state.CollectedData["age"],
		"sex":             f.state.CollectedData["sex"],
		"groupement_name": f.state.CollectedData["groupement_name"],
	}), false
}

func (f *accountFlow) Complete(ctx context.Context) (string, map[string]any) {
	fullName := f.state.CollectedData["full_name"]
	groupementID, _ := strconv.Atoi(f.state.CollectedData["groupement_id"])

	req := ports.CreateAccountRequest{
		FullName:     fullName,
		PhoneNumber:  f.state.PhoneNumber,
		Age:          f.state.CollectedData["age"],
		Sex:          f.state.CollectedData["sex"],
		GroupementID: groupementID,
	}

	acc, err := f.backend.CreateAccount(ctx, req)
	if err != nil {
		f.state.ResetFlow()
		if errors.Is(err, ports.ErrPhoneTaken) {
			return f.general("already_has_account"), map[string]any{"error": err.Error()}
		}
		f.warn("account creation failed", err)
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}

	f.state.AccountID = acc.ID
	f.state.AccountBalance = acc.Balance
	f.state.ResetFlow()

	return f.promptVars("success", map[string]string{"name": fullName}), map[string]any{
		"account_id":     acc.ID,
		"account_number": acc.AccountNumber,
		"full_name":      fullName,
	}
}
