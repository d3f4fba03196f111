// Package decks holds the built-in slide decks. Each deck is static data:
// a pure function from a Style to an ordered list of slide definitions.
package decks

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

const (
	// CloudSecurityName is the catalog name of the cloud security deck
	CloudSecurityName = "cloud-security"

	// CloudSecurityTitle is the deck title and the text of its cover slide
	CloudSecurityTitle = "Cloud Security: Protecting Your Digital Sky"

	// CloudSecuritySlides is the number of slides the deck always has
	CloudSecuritySlides = 12
)

// CloudSecurity is the twelve-slide introduction to cloud security
type CloudSecurity struct {
	author  string
	company string
}

// NewCloudSecurity creates the deck source; author goes into the document properties
func NewCloudSecurity(author string) *CloudSecurity {
	return &CloudSecurity{author: author}
}

// WithCompany sets the company stored in the document properties
func (c *CloudSecurity) WithCompany(company string) *CloudSecurity {
	c.company = company
	return c
}

// Name returns the catalog name
func (c *CloudSecurity) Name() string {
	return CloudSecurityName
}

// Deck builds the deck for the given style
func (c *CloudSecurity) Deck(style entities.Style) (*entities.Deck, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	deck := entities.NewDeck(CloudSecurityTitle)
	deck.Author = c.author
	deck.Company = c.company
	deck.Colors = style.Colors

	w := writer{style: style}
	for _, slide := range []entities.SlideSpec{
		w.cover(),
		w.agenda(),
		w.whatIsCloudSecurity(),
		w.whyItMatters(),
		w.threats(),
		w.bestPracticesOne(),
		w.bestPracticesTwo(),
		w.tools(),
		w.realWorld(),
		w.futureTrends(),
		w.conclusion(),
		w.questions(),
	} {
		deck.AddSlide(slide)
	}

	return deck, nil
}

// writer turns style tokens into formatted paragraphs
type writer struct {
	style entities.Style
}

func (w writer) slide(title string, body ...entities.ContentBlock) entities.SlideSpec {
	t := entities.ContentBlock{
		Text:  title,
		Size:  w.style.Typography.Title,
		Color: w.style.Colors.Primary,
	}
	return entities.SlideSpec{
		Layout: entities.LayoutTitleContent,
		Title:  &t,
		Body:   body,
	}
}

func (w writer) heading(text string, spaceBefore int) entities.ContentBlock {
	return entities.ContentBlock{
		Text:        text,
		Size:        w.style.Typography.Heading,
		Bold:        true,
		Color:       w.style.Colors.Text,
		SpaceBefore: spaceBefore,
	}
}

func (w writer) point(text string, level, size, spaceBefore int) entities.ContentBlock {
	return entities.ContentBlock{
		Text:        text,
		Level:       level,
		Size:        size,
		Color:       w.style.Colors.Text,
		SpaceBefore: spaceBefore,
	}
}

func (w writer) aside(text string, level, size, spaceBefore int) entities.ContentBlock {
	b := w.point(text, level, size, spaceBefore)
	b.Italic = true
	return b
}

func (w writer) points(texts []string, level, size, spaceBefore int) []entities.ContentBlock {
	out := make([]entities.ContentBlock, 0, len(texts))
	for _, text := range texts {
		out = append(out, w.point(text, level, size, spaceBefore))
	}
	return out
}

func (w writer) banner(x, y, width, height float64, text string, size int, bold bool) entities.TextBox {
	return entities.TextBox{
		Frame: entities.Frame{
			X:      entities.Inches(x),
			Y:      entities.Inches(y),
			Width:  entities.Inches(width),
			Height: entities.Inches(height),
		},
		Blocks: []entities.ContentBlock{{
			Text:  text,
			Size:  size,
			Bold:  bold,
			Color: entities.White,
			Align: entities.AlignCenter,
		}},
	}
}

func (w writer) filled(boxes ...entities.TextBox) entities.SlideSpec {
	bg := w.style.Colors.Primary
	return entities.SlideSpec{
		Layout:     entities.LayoutBlank,
		Background: &bg,
		TextBoxes:  boxes,
	}
}

func join(groups ...[]entities.ContentBlock) []entities.ContentBlock {
	var out []entities.ContentBlock
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func one(b entities.ContentBlock) []entities.ContentBlock {
	return []entities.ContentBlock{b}
}

func (w writer) cover() entities.SlideSpec {
	ty := w.style.Typography
	return w.filled(
		w.banner(1, 2.5, 8, 1, CloudSecurityTitle, ty.CoverTitle, true),
		w.banner(1, 3.8, 8, 0.6, "A Simple Guide to Safeguarding Your Data in the Cloud", ty.CoverSubtitle, false),
		w.banner(1, 5, 8, 0.4, "November 2025", ty.CoverDate, false),
	)
}

func (w writer) agenda() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Agenda", join(
		one(w.point("Introduction to Cloud Security", 0, ty.Heading, 0)),
		w.points([]string{
			"Why It Matters",
			"Key Threats and Risks",
			"Best Practices",
			"Tools and Technologies",
			"Real-World Examples",
			"Future Trends",
			"Q&A",
		}, 0, ty.Heading, sp.Item),
	)...)
}

func (w writer) whatIsCloudSecurity() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("What is Cloud Security?", join(
		one(w.heading("Definition", 0)),
		one(w.point("Cloud security protects data, applications, and infrastructure in cloud environments (AWS, Azure, Google Cloud) from threats.", 0, ty.Body, sp.Item)),
		one(w.heading("Analogy: The Cloud as a Digital Sky", sp.Section)),
		one(w.point("Think of the cloud as a vast digital sky—security is the 'air traffic control' ensuring safe flights for your data.", 0, ty.Body, sp.Item)),
		one(w.heading("Key Components", sp.Section)),
		w.points([]string{
			"Identity and access management",
			"Data encryption",
			"Network security",
			"Compliance",
		}, 1, ty.Detail, 0),
	)...)
}

func (w writer) whyItMatters() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Why Cloud Security Matters",
		w.heading("Benefits of Cloud", 0),
		w.point("Scalability, cost savings, remote access—but introduces risks like data breaches", 0, ty.Body, 0),
		w.heading("Critical Statistics", sp.Section),
		w.point("82% of organizations experienced a cloud security incident in 2023 (IBM report)", 1, ty.Body, 0),
		w.point("Without security: fines, data loss, reputational damage", 1, ty.Body, 0),
		w.heading("Real Impact", sp.Section),
		w.aside("Losing customer data is like a storm wiping out your digital assets", 0, ty.Body, 0),
	)
}

func (w writer) threats() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Key Threats and Risks", join(
		one(w.heading("Common Threats", 0)),
		w.points([]string{
			"Data breaches - unauthorized access to sensitive information",
			"DDoS attacks - overwhelming servers like a traffic jam",
			"Insider threats - employees or partners gone rogue",
			"Misconfigurations - accidental exposures (leaving doors unlocked)",
		}, 1, ty.Detail, sp.List),
		one(w.heading("The CIA Triad", sp.Section)),
		w.points([]string{"Confidentiality", "Integrity", "Availability"}, 1, ty.Detail, 0),
	)...)
}

func (w writer) bestPracticesOne() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Best Practices - Part 1",
		w.heading("1. Secure Access", 0),
		w.point("Use multi-factor authentication (MFA)", 1, ty.Body, 0),
		w.point("Implement least-privilege access—only give keys to those who need them", 1, ty.Body, 0),
		w.heading("2. Encrypt Data", sp.Section),
		w.point("Protect data in transit and at rest", 1, ty.Body, 0),
		w.aside("Like locking valuables in a safe", 1, ty.Body, 0),
		w.heading("3. Regular Audits", sp.Section),
		w.point("Monitor logs continuously", 1, ty.Body, 0),
		w.point("Conduct penetration testing to find vulnerabilities", 1, ty.Body, 0),
	)
}

func (w writer) bestPracticesTwo() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Best Practices - Part 2",
		w.heading("4. Compliance and Policies", 0),
		w.point("Follow standards like ISO 27001 or NIST", 1, ty.Body, 0),
		w.point("Train employees on security hygiene", 1, ty.Body, 0),
		w.heading("5. Incident Response", sp.Section),
		w.point("Have a plan for breaches: Detect → Respond → Recover", 1, ty.Body, 0),
		w.heading("6. Zero Trust Model", sp.Section),
		w.aside(`"Never trust, always verify"`, 1, ty.Body, 0),
		w.point("Assume nothing is secure by default", 1, ty.Body, 0),
	)
}

func (w writer) tools() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Tools and Technologies", join(
		one(w.heading("Popular Security Tools", 0)),
		w.points([]string{
			"AWS GuardDuty - Threat detection",
			"Azure Security Center - Monitoring",
			"Cloudflare - DDoS protection",
			"Vault / AWS KMS - Encryption management",
		}, 1, ty.Body, sp.List),
		one(w.heading("Emerging Technologies", sp.Section)),
		one(w.point("AI-driven security for anomaly detection", 1, ty.Body, 0)),
		one(w.aside("💡 Tip: Start free with cloud provider tools; integrate with SIEM systems", 0, ty.Detail, sp.Section)),
	)...)
}

func (w writer) realWorld() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Real-World Examples",
		w.heading("Success Story: Capital One (2019)", 0),
		w.point("Breach led to better encryption practices", 1, ty.Body, 0),
		w.point("Now uses advanced AI security systems", 1, ty.Body, 0),
		w.heading("Lesson Learned: SolarWinds (2020)", sp.Section),
		w.point("Highlighted supply chain risks", 1, ty.Body, 0),
		w.point("Emphasized importance of vendor vetting", 1, ty.Body, 0),
		w.heading("Key Takeaway", sp.Section),
		w.aside("Learn from incidents to strengthen your security posture", 0, ty.Body, 0),
	)
}

func (w writer) futureTrends() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Future Trends in Cloud Security",
		w.heading("AI and Automation", 0),
		w.point("Smarter threat prediction and response", 1, ty.Body, 0),
		w.heading("Edge Computing Security", sp.Group),
		w.point("Protecting data closer to users", 1, ty.Body, 0),
		w.heading("Quantum-Resistant Encryption", sp.Group),
		w.point("Preparing for quantum computing threats", 1, ty.Body, 0),
		w.aside("⚠️ Prediction: By 2025, 99% of cloud failures will be due to human error", 0, ty.Detail, sp.Section),
	)
}

func (w writer) conclusion() entities.SlideSpec {
	ty, sp := w.style.Typography, w.style.Spacing
	return w.slide("Conclusion", join(
		one(w.heading("Key Takeaway", 0)),
		one(w.point("Cloud security isn't optional—it's essential for a safe digital sky", 0, ty.Emphasis, sp.Item)),
		one(w.heading("Call to Action", sp.Section)),
		w.points([]string{
			"Start small: Implement MFA today",
			"Conduct regular security audits",
			"Assess your cloud setup",
			"Contact security experts if needed",
		}, 1, ty.Body, sp.List),
		one(w.aside(`"Security is not a product, but a process." - Bruce Schneier`, 0, ty.Body, sp.Quote)),
	)...)
}

func (w writer) questions() entities.SlideSpec {
	ty := w.style.Typography
	return w.filled(
		w.banner(2, 2.5, 6, 1.5, "Questions & Answers", ty.ClosingTitle, true),
		w.banner(2, 4.5, 6, 0.8, "Thank you for your attention!", ty.ClosingSubtitle, false),
	)
}

var _ ports.DeckSource = (*CloudSecurity)(nil)
