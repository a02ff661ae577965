package httperr

// Mensajes para el cliente; el front decide por error_code.
var messages = map[string]string{
	// genéricos
	"internal_error":  "Ocurrió un error inesperado",
	"invalid_request": "La solicitud no tiene el formato esperado",
	"invalid_id":      "Identificador inválido",
	"invalid_status":  "Estado inválido",
	"invalid_month":   "Mes o año inválido",
	"invalid_offset":  "Paginación inválida",
	"store_failure":   "No se pudo acceder a la base de datos",
	"rate_limited":    "Demasiados intentos, espera un momento",

	// sesión y perfil
	"not_authenticated":            "Debes iniciar sesión",
	"missing_authorization_header": "Falta el encabezado Authorization",
	"invalid_authorization_header": "El encabezado Authorization debe ser Bearer",
	"invalid_token":                "El enlace o token no es válido o expiró",
	"admin_only":                   "Solo un administrador puede realizar esta acción",
	"not_owner":                    "No tienes acceso a este recurso",
	"credentials_required":         "Correo y contraseña son obligatorios",
	"invalid_credentials":          "Correo o contraseña incorrectos",
	"profile_inactive":             "Tu perfil está desactivado",
	"email_not_confirmed":          "Confirma tu correo antes de iniciar sesión",
	"email_already_registered":     "El correo ya está registrado",
	"profile_already_exists":       "Ya existe un perfil con ese correo o CURP",
	"profile_not_found":            "Perfil no encontrado",
	"invalid_email":                "Correo inválido",
	"invalid_email_domain":         "El dominio del correo no existe",
	"invalid_curp":                 "CURP inválida",
	"password_too_short":           "La contraseña debe tener al menos 8 caracteres",
	"name_required":                "El nombre es obligatorio",
	"invalid_role":                 "Rol inválido",
	"cannot_deactivate_self":       "No puedes desactivar tu propio perfil",

	// mascotas
	"pet_not_found":     "Mascota no encontrada",
	"pet_not_available": "La mascota no está disponible para adopción",
	"pet_status_locked": "La mascota está en un proceso de adopción",
	"pet_name_required": "El nombre de la mascota es obligatorio",
	"invalid_species":   "Especie inválida",
	"invalid_sex":       "Sexo inválido",
	"invalid_size":      "Tamaño inválido",
	"invalid_age":       "Edad inválida",

	// archivos
	"file_required":         "Debes adjuntar un archivo",
	"file_too_large":        "El archivo supera los 5 MB",
	"file_type_not_allowed": "Tipo de archivo no permitido",
	"too_many_files":        "Puedes adjuntar hasta 5 archivos",
	"invalid_image":         "La imagen no se pudo leer",
	"image_too_large":       "La imagen tiene demasiados píxeles",
	"evidence_required":     "Debes adjuntar al menos una foto",
	"storage_failure":       "No se pudo guardar el archivo",

	// documentos
	"document_not_found":        "Documento no encontrado",
	"invalid_document_type":     "Tipo de documento inválido",
	"invalid_decision":          "Decisión inválida",
	"rejection_reason_required": "Indica el motivo del rechazo",
	"documents_rejected":        "Tienes documentos rechazados; vuelve a subirlos",
	"documents_not_approved":    "Tus documentos aún no están aprobados",

	// solicitudes
	"request_not_found":       "Solicitud no encontrada",
	"request_not_pending":     "La solicitud ya fue resuelta",
	"request_not_approved":    "La solicitud no está aprobada",
	"request_not_cancellable": "La solicitud ya no se puede cancelar",

	// citas
	"appointment_not_found":       "Cita no encontrada",
	"appointment_not_pending":     "La cita ya fue resuelta",
	"appointment_not_cancellable": "La cita ya no se puede cancelar",
	"appointment_not_approved":    "La cita no está aprobada",
	"appointment_not_held_yet":    "La cita todavía no se realiza",
	"appointment_too_soon":        "La cita debe agendarse con más anticipación",
	"invalid_datetime":            "Fecha y hora inválidas",
	"visit_already_scheduled":     "Ya tienes una cita de convivencia activa",
	"outcome_already_recorded":    "El resultado de la cita ya fue registrado",
	"invalid_outcome":             "Resultado de cita inválido",
	"adoption_required":           "Indica la adopción de la mascota",
	"adoption_pet_mismatch":       "La mascota no corresponde a la adopción",
	"vet_notes_required":          "Las notas del veterinario son obligatorias",

	// adopción y seguimiento
	"adoption_not_found":          "Adopción no encontrada",
	"adoption_already_exists":     "La adopción ya fue registrada",
	"positive_visit_required":     "Se requiere una cita de convivencia con resultado favorable",
	"invalid_housing_type":        "Tipo de vivienda inválido",
	"invalid_available_space":     "Espacio disponible inválido",
	"other_pets_detail_required":  "Describe las otras mascotas del hogar",
	"commitments_required":        "Debes aceptar todos los compromisos",
	"follow_up_not_found":         "Seguimiento no encontrado",
	"follow_up_not_active":        "El seguimiento aún no está activo",
	"follow_up_already_completed": "El seguimiento ya fue completado",

	// donaciones
	"donation_not_found":       "Donación no encontrada",
	"donation_amount_too_low":  "El monto mínimo de donación es de 10 MXN",
	"invalid_payment_id":       "Pago inválido",
	"payments_not_configured":  "Las donaciones en línea no están disponibles",
	"payment_provider_failure": "No se pudo contactar al procesador de pagos",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
