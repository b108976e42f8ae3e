// Package errors provides structured error handling for the arena engine.
//
// Errors carry a code, a message, an optional cause, and optional metadata:
//
//	err := errors.NotFound("battle not found").WithMeta("battle_id", id)
//
// Wrapping preserves the original code:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load team chemistry")
//	}
//
// Configuration validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// Layer guidelines: repositories return NotFound/AlreadyExists with IDs in
// metadata; the engine components validate inputs with InvalidArgument and
// never surface errors mid-battle; invalid round inputs degrade to safe
// defaults per the engine's error policy.
package errors
