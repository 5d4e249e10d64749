package auth

import "context"

type subjectKey struct{}

// WithSubject stores the authenticated user id. Handlers read it back with
// SubjectFromContext and never trust a user id from the request body.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey{}, sub)
}

func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)
	return s
}
