package transcribe

import "strings"

// maxTitleChars bounds how much of the hearing title enters the
// recognition prompt.
const maxTitleChars = 200

// stateVocabulary biases Whisper toward each commission's names and
// docket-number shapes.
var stateVocabulary = map[string]string{
	"FL": "Florida Public Service Commission, PSC, Florida Power & Light, FPL, Duke Energy Florida, Tampa Electric, TECO, Peoples Gas, docket 20240025-EI, fuel cost recovery",
	"TX": "Public Utility Commission of Texas, PUCT, ERCOT, Oncor, CenterPoint Energy, AEP Texas, Texas-New Mexico Power, docket 56211, securitization",
	"CA": "California Public Utilities Commission, CPUC, Pacific Gas and Electric, PG&E, Southern California Edison, SCE, San Diego Gas & Electric, SDG&E, application A.24-01-015, general rate case",
	"OH": "Public Utilities Commission of Ohio, PUCO, AEP Ohio, Duke Energy Ohio, FirstEnergy, AES Ohio, case 24-0508-EL-AIR, electric security plan",
}

// BuildPrompt assembles the per-hearing initial_prompt from the
// state's vocabulary plus a bounded slice of the hearing title.
func BuildPrompt(stateCode, title string) string {
	parts := []string{"Public utility commission hearing."}

	if vocab, ok := stateVocabulary[strings.ToUpper(stateCode)]; ok {
		parts = append(parts, "Vocabulary: "+vocab+".")
	}

	title = strings.TrimSpace(title)
	if title != "" {
		if len(title) > maxTitleChars {
			title = title[:maxTitleChars]
		}
		parts = append(parts, "Topic: "+title)
	}

	return strings.Join(parts, " ")
}
