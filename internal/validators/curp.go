package validators

import (
	"regexp"
	"strings"
)

// Formato oficial: 4 letras, fecha AAMMDD, sexo, entidad, 3 consonantes,
// homoclave y dígito verificador.
var curpPattern = regexp.MustCompile(`^[A-Z][AEIOUX][A-Z]{2}\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])[HMX](AS|BC|BS|CC|CL|CM|CS|CH|DF|DG|GT|GR|HG|JC|MC|MN|MS|NT|NL|OC|PL|QT|QR|SP|SL|SR|TC|TS|TL|VZ|YN|ZS|NE)[B-DF-HJ-NP-TV-Z]{3}[A-Z\d]\d$`)

// NormalizeCURP pasa a mayúsculas y quita espacios.
func NormalizeCURP(curp string) string {
	return strings.ToUpper(strings.TrimSpace(curp))
}

func IsCURPValid(curp string) bool {
	return curpPattern.MatchString(NormalizeCURP(curp))
}
