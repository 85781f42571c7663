// Package assemble joins matrix rows against extracted items and renders the
// prompt package. The section order and literal framing text are part of the
// contract consumed by the downstream drafting step and must not be
// reordered.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/jthorn/casepack/internal/extract"
	"github.com/jthorn/casepack/internal/model"
)

// MissingBodyPlaceholder surfaces a matrix identifier with no extracted
// item. A visible placeholder is used instead of dropping the row; a silent
// drop would lose a legal item.
const MissingBodyPlaceholder = "[REQUEST TEXT NOT FOUND IN DISCOVERY FILE]"

// TruncationMarker is appended whenever a context block is cut at the
// character budget. Truncation is never silent.
const TruncationMarker = "\n[...truncated for length...]"

// Input carries everything one package is assembled from.
type Input struct {
	DocType       model.DocType
	DiscoveryFile string // base name, header metadata only
	MatrixFile    string // base name, header metadata only
	WorkDir       string

	Rows   []model.MatrixRow
	Items  *extract.ItemSet
	Blocks model.ContextBlocks

	// Support names the files the context blocks were read from; the setup
	// bullets reference them by name.
	Support model.SupportConfig

	GeneratedAt time.Time
}

// Assembler renders packages under one verbosity setting and one set of
// rendering caps.
type Assembler struct {
	verbosity model.Verbosity
	limits    model.LimitsConfig
}

// New creates an assembler. Out-of-range verbosity is clamped to the
// supported 0-3 range.
func New(verbosity model.Verbosity, limits model.LimitsConfig) *Assembler {
	if verbosity < model.VerbosityMinimal {
		verbosity = model.VerbosityMinimal
	}
	if verbosity > model.VerbosityHigh {
		verbosity = model.VerbosityHigh
	}
	return &Assembler{verbosity: verbosity, limits: limits}
}

// Assemble renders the package. Every matrix row produces exactly one
// rendered item, in matrix order; items missing from the document render
// with the placeholder body.
func (a *Assembler) Assemble(in Input) *model.Package {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}
	rule := func() {
		line("---")
		line("")
	}

	noun := in.DocType.Noun()

	// Header metadata.
	line("# PROMPT PACKAGE: %s", in.DocType)
	line("**Generated:** %s", in.GeneratedAt.Format("2006-01-02 15:04:05"))
	line("**Working Directory:** `%s`", in.WorkDir)
	line("**Discovery File:** `%s`", in.DiscoveryFile)
	line("**Matrix File:** `%s`", in.MatrixFile)
	line("**Explanation Level:** %s", a.verbosity.Name())
	line("")
	rule()

	// Setup & context.
	line("## SETUP & CONTEXT")
	line("")
	line("**Working Folder:** `%s`", in.WorkDir)
	line("")
	line("Before drafting responses, review the following context documents in the working folder:")
	line("")
	if in.Blocks.CaseSummary != "" {
		line("- **Case Summary:** `%s` — Understanding the case context helps craft persuasive, case-specific objections.", in.Support.CaseSummary)
	}
	if in.Blocks.PreliminaryObjs != "" {
		line("- **Preliminary Objections:** `%s` — Every response incorporates these by reference.", in.Support.PreliminaryObjs)
	}
	if in.Blocks.Templates != "" {
		line("- **Objection Templates:** `%s` — Approved language for specific objections.", in.Support.Templates)
	}
	line("")
	line("These documents are included below for your reference.")
	line("")
	rule()

	// Drafting instructions.
	line("## DRAFTING INSTRUCTIONS")
	line("")
	line("Draft %s responses using the **JT three-layer format**.", in.DocType)
	line("Use **%q** as the discovery type (not \"request\" generically).", noun)
	line("")
	line("### STRUCTURE (every response MUST follow)")
	line("```")
	line("Responding Party incorporates by reference the Preliminary Statement and General")
	line("Objections, above, as if fully set forth herein.")
	line("")
	line("[SPECIFIC OBJECTIONS - if any marked, as flowing prose]")
	line("")
	line("Subject to, and without waiving, the Preliminary Statement, General Objections,")
	line("and the foregoing objections, Responding Party responds as follows:")
	line("")
	line("[SUBSTANTIVE RESPONSE]")
	line("```")
	line("")

	// Explanation depth.
	line("### EXPLANATION DEPTH")
	line("**%s:** %s", strings.ToUpper(a.verbosity.Name()), a.verbosity.Directive())
	line("")
	if a.verbosity >= model.VerbosityMedium {
		line("When adding case-specific reasoning:")
		line("- Draw from the Case Summary for strategic context")
		line("- Use cell notes (shown with each objection) for specific guidance")
		line("- Reference the Notes column for request-level context")
		line("- Keep reasoning concise (1-3 sentences per objection ground)")
		line("")
	}
	rule()

	// Context blocks, size-capped with an explicit marker.
	if in.Blocks.CaseSummary != "" {
		line("## CASE SUMMARY")
		line("")
		line("Review this summary to understand the case context and craft persuasive objections.")
		line("")
		line("```")
		line("%s", a.capBlock(in.Blocks.CaseSummary))
		line("```")
		line("")
		rule()
	}

	if in.Blocks.PreliminaryObjs != "" {
		line("## PRELIMINARY STATEMENT & GENERAL OBJECTIONS")
		line("")
		line("These are incorporated by reference in every response. Review them to understand")
		line("what grounds are already preserved at the general level.")
		line("")
		line("```")
		line("%s", a.capBlock(in.Blocks.PreliminaryObjs))
		line("```")
		line("")
		rule()
	}

	// The template catalog is embedded verbatim: its numbered entries are
	// the targets of the per-item template references below.
	if in.Blocks.Templates != "" {
		line("## APPROVED OBJECTION TEMPLATES")
		line("")
		line("Use these numbered templates as your foundation. Fill in [SPECIFY] placeholders.")
		line("Combine multiple objections into flowing prose (no bullet points in final response).")
		line("")
		line("```")
		line("%s", in.Blocks.Templates)
		line("```")
		line("")
		rule()
	}

	// Per-item section, in matrix order.
	line("## REQUESTS (%d total)", len(in.Rows))
	line("")

	withSelections := 0
	for _, row := range in.Rows {
		body := MissingBodyPlaceholder
		if text, ok := in.Items.Get(row.ID); ok {
			body = text
		}

		line("### %s NO. %s", in.DocType, row.ID)
		line("")
		line("**TEXT:**")
		line("> %s", a.capBody(body))
		line("")

		if len(row.Selections) > 0 {
			withSelections++
			line("**OBJECTIONS:**")
			for _, sel := range row.Selections {
				line("%s", a.renderSelection(sel))
			}
		} else {
			line("**OBJECTIONS:** None (still use incorporation language)")
		}
		line("")

		if row.Note != "" && a.verbosity >= model.VerbosityMedium {
			line("**NOTES:** %s", row.Note)
			line("")
		}

		rule()
	}

	// Output format template block, literal framing for the drafting step.
	line("## OUTPUT FORMAT")
	line("")
	line("Save your output as a `.md` file with this structure for each request:")
	line("")
	line("```")
	line("### %s NO. [NUMBER]", in.DocType)
	line("")
	line("Responding Party incorporates by reference the Preliminary Statement and General")
	line("Objections, above, as if fully set forth herein.")
	line("")
	line("[Specific objections as flowing prose - if any]")
	line("")
	line("Subject to, and without waiving, the Preliminary Statement, General Objections,")
	line("and the foregoing objections, Responding Party responds as follows:")
	line("")
	line("[Substantive response]")
	line("")
	line("---")
	line("```")

	return &model.Package{
		DocType:            in.DocType,
		Markdown:           b.String(),
		GeneratedAt:        in.GeneratedAt,
		TotalRows:          len(in.Rows),
		RowsWithSelections: withSelections,
		ItemCount:          in.Items.Len(),
	}
}

// renderSelection renders one objection ground. Known categories carry
// their template reference; custom categories render as free text, flagged,
// with no number. Cell notes appear from level Low upward (custom grounds
// always keep their note, since the note is all the context they have).
func (a *Assembler) renderSelection(sel model.Selection) string {
	if sel.Custom() {
		if sel.Note != "" {
			return fmt.Sprintf("- **%s** (custom): *%s*", sel.Category, sel.Note)
		}
		return fmt.Sprintf("- **%s** (custom)", sel.Category)
	}
	if sel.Note != "" && a.verbosity >= model.VerbosityLow {
		return fmt.Sprintf("- **%s** (Template #%s): *%s*", sel.Category, sel.Category.TemplateRef(), sel.Note)
	}
	return fmt.Sprintf("- **%s** (Template #%s)", sel.Category, sel.Category.TemplateRef())
}

// capBody caps a rendered item body with an ellipsis. The cap applies to
// rendering only, never to the extracted data.
func (a *Assembler) capBody(body string) string {
	max := a.limits.ItemBodyChars
	if max <= 0 || len(body) <= max {
		return body
	}
	return body[:max] + "..."
}

// capBlock caps a context block at the character budget with the explicit
// truncation marker.
func (a *Assembler) capBlock(block string) string {
	max := a.limits.ContextBlockChars
	if max <= 0 || len(block) <= max {
		return block
	}
	return block[:max] + TruncationMarker
}
