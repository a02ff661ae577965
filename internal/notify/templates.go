package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

type mailTemplate struct {
	subject string
	body    *template.Template
}

const layout = `<!doctype html><html><body style="font-family:sans-serif">
{{template "content" .}}
<p style="color:#888">Refugio de animales</p>
</body></html>`

func parse(subject, content string) mailTemplate {
	t := template.Must(template.New("layout").Parse(layout))
	template.Must(t.New("content").Parse(content))
	return mailTemplate{subject: subject, body: t}
}

var templates = map[Kind]mailTemplate{
	KindRegistrationConfirmation: parse(
		"Confirma tu cuenta",
		`<p>Hola {{.Name}}, confirma tu correo aquí:</p><p><a href="{{.Link}}">{{.Link}}</a></p>`,
	),
	KindPasswordReset: parse(
		"Restablece tu contraseña",
		`<p>Hola {{.Name}}, para elegir una nueva contraseña entra a:</p><p><a href="{{.Link}}">{{.Link}}</a></p><p>El enlace vence en una hora.</p>`,
	),
	KindRequestApproved: parse(
		"Tu solicitud fue aprobada",
		`<p>Hola {{.Name}}, tu solicitud para adoptar a {{.Pet}} fue aprobada. Ya puedes agendar tu cita de convivencia.</p>`,
	),
	KindRequestRejected: parse(
		"Actualización de tu solicitud",
		`<p>Hola {{.Name}}, tu solicitud para adoptar a {{.Pet}} no fue aprobada.</p>{{if .Reason}}<p>Motivo: {{.Reason}}</p>{{end}}`,
	),
	KindAppointmentApproved: parse(
		"Cita confirmada",
		`<p>Hola {{.Name}}, tu cita del {{.When}} fue confirmada.</p>`,
	),
	KindAppointmentCancelled: parse(
		"Cita cancelada",
		`<p>Hola {{.Name}}, tu cita del {{.When}} fue cancelada.</p>`,
	),
	KindDocumentRejected: parse(
		"Documento rechazado",
		`<p>Hola {{.Name}}, tu documento {{.Type}} fue rechazado.</p><p>Motivo: {{.Reason}}</p><p>Puedes subirlo de nuevo desde tu perfil.</p>`,
	),
	KindAdoptionFinalized: parse(
		"¡Bienvenido a la familia!",
		`<p>Hola {{.Name}}, la adopción de {{.Pet}} quedó registrada. Te contactaremos para los seguimientos.</p>`,
	),
}

// Render devuelve asunto y cuerpo HTML.
func Render(kind Kind, data Data) (string, string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", "", fmt.Errorf("notify: unknown template %q", kind)
	}

	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return t.subject, buf.String(), nil
}
