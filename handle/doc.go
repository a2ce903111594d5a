// Package handle provides the runtime's handle tables.
//
// A Handle is an opaque uint32 naming a live runtime object. Handle 0 is
// reserved and always invalid, so compiled code can use it as the "no
// object" sentinel without a separate error channel.
//
// # Generational slots
//
// Each table slot carries a generation counter that is folded into the
// handles it issues. A handle is only valid while its generation matches
// the slot's; removing an object bumps the generation, so a stale handle
// held across a remove can never alias a newer object in the same slot.
// The shipped runtime never removes tensors or models (objects live until
// process exit), but the table is safe if that ever changes.
//
// # Capacity
//
// Tables have a fixed capacity. Insert on a full table returns handle 0
// rather than an error: the compiler ABI has no error channel for object
// creation, so capacity exhaustion is a soft failure by contract.
package handle
