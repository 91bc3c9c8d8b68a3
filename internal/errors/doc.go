// Package errors provides structured errors for the innkeeper simulation core.
//
// Every error carries a Code, a short Message, an optional Cause and optional
// metadata. The simulation distinguishes three families:
//
//   - configuration errors, returned by constructors as InvalidArgument so the
//     caller can disable the owning feature,
//   - lookup misses and exhausted resources (NotFound, ResourceExhausted,
//     FailedPrecondition) which are logged as warnings and otherwise ignored,
//   - invariant violations, created with Invariant, which stop the tick loop.
//
// Placement rejection is not an error at all; validators return booleans.
//
// # Basic Usage
//
//	err := errors.NotFoundf("object %d not in catalog", id)
//	err := errors.NotFoundf("instance %d not tracked", idx).WithMeta("mode", "delete")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Credit(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to credit wallet")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	errors.ValidatePositive("MaxLength", cfg.MaxLength, vb)
//	return vb.Build()
//
// # Invariants
//
//	if head != served {
//	    return errors.Invariantf("served agent %s is not queue head %s", served, head)
//	}
//
// errors.IsInvariant(err) reports whether a failure came from a broken
// invariant anywhere in the wrap chain.
package errors
