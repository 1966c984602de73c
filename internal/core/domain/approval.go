package domain

// CanReview reports whether viewer may approve or reject the given despesa.
// Rules are evaluated in order, first match wins:
//
//  1. nobody acts on their own despesa, superuser included;
//  2. a superuser acts on anyone else's;
//  3. a DIRETOR acts on a GESTOR's;
//  4. a GESTOR acts on a COLABORADOR's;
//  5. everything else is denied.
//
// This only gates the visibility of the approve/reject controls. The backend
// re-enforces the same rule on its endpoints; hiding a control here is a UI
// convenience, not a trust boundary.
func CanReview(viewer User, d Despesa) bool {
	if d.UsuarioDetalhes == nil {
		return false
	}
	if viewer.ID == d.UsuarioDetalhes.ID {
		return false
	}
	if viewer.IsSuperuser {
		return true
	}
	switch viewer.Tipo() {
	case RoleDiretor:
		return d.UsuarioDetalhes.Tipo() == RoleGestor
	case RoleGestor:
		return d.UsuarioDetalhes.Tipo() == RoleColaborador
	}
	return false
}
