package httperr

// FromStore traduce errores del repositorio: not found -> notFoundCode,
// índice único -> conflictCode (si se indica), el resto -> Upstream.
func FromStore(err error, notFoundCode string, conflictCode ...string) error {
	if err == nil {
		return nil
	}
	if IsRecordNotFound(err) && notFoundCode != "" {
		return NotFound(notFoundCode)
	}
	if len(conflictCode) > 0 && IsUniqueViolation(err) {
		return Conflict(conflictCode[0])
	}
	if KindOf(err) != "" {
		return err
	}
	return Upstream("store_failure", err)
}
