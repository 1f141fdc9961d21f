package auth

import "context"

type SignUpUseCase interface {
	Execute(ctx context.Context, input SignUpInput) (SignUpOutput, error)
}

type VerifyUseCase interface {
	Execute(ctx context.Context, input VerifyInput) (VerifyOutput, error)
}

type SignInUseCase interface {
	Execute(ctx context.Context, input SignInInput) (SignInOutput, error)
}

type SignOutUseCase interface {
	Execute(ctx context.Context, input SignOutInput) error
}
