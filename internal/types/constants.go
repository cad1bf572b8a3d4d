package types

// ContextUserKey is the gin context key AuthMiddleware stores the
// authenticated principal under.
const ContextUserKey = "user"
