package persist

import "context"

// Override interfaces. A record implementing one of these replaces the
// corresponding composite operation entirely - hooks included. The
// override receives the gateway so it can delegate to the PerformX
// primitives.

// Inserter overrides the Insert composite.
type Inserter interface {
	Insert(ctx context.Context, g *Gateway) error
}

// Updater overrides the Update composite.
type Updater interface {
	Update(ctx context.Context, g *Gateway) error
}

// Saver overrides the Save composite.
type Saver interface {
	Save(ctx context.Context, g *Gateway) error
}

// Deleter overrides the Delete composite.
type Deleter interface {
	Delete(ctx context.Context, g *Gateway) (bool, error)
}

// ExistsChecker overrides the Exists composite.
type ExistsChecker interface {
	Exists(ctx context.Context, g *Gateway) (bool, error)
}

// Hook interfaces. Hooks wrap the default body without altering its
// contract: a Before hook runs first and aborts the operation by
// returning an error; an After hook runs only after the default body
// succeeded. Exists, being a pure read, has no After hook.

// BeforeInserter runs before the default insert body.
type BeforeInserter interface {
	BeforeInsert(ctx context.Context) error
}

// BeforeUpdater runs before the default update body.
type BeforeUpdater interface {
	BeforeUpdate(ctx context.Context) error
}

// BeforeSaver runs before the default save body.
type BeforeSaver interface {
	BeforeSave(ctx context.Context) error
}

// BeforeDeleter runs before the default delete body.
type BeforeDeleter interface {
	BeforeDelete(ctx context.Context) error
}

// BeforeExistsChecker runs before the default exists body.
type BeforeExistsChecker interface {
	BeforeExists(ctx context.Context) error
}

// AfterInserter runs after a successful default insert.
type AfterInserter interface {
	AfterInsert(ctx context.Context) error
}

// AfterUpdater runs after a successful default update.
type AfterUpdater interface {
	AfterUpdate(ctx context.Context) error
}

// AfterSaver runs after a successful default save.
type AfterSaver interface {
	AfterSave(ctx context.Context) error
}

// AfterDeleter runs after the default delete body, whether or not a
// row was deleted (absence is a result, not a failure).
type AfterDeleter interface {
	AfterDelete(ctx context.Context) error
}
