package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/otpvault/internal/pkg/clock"
	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/pkg/totp"
	"github.com/shandysiswandi/otpvault/internal/pkg/validator"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
)

type fakeRepo struct {
	secrets map[string]string
	failErr error
}

func newFakeRepo(secrets map[string]string) *fakeRepo {
	if secrets == nil {
		secrets = make(map[string]string)
	}
	return &fakeRepo{secrets: secrets}
}

func (f *fakeRepo) CreateSecret(_ context.Context, in entity.Secret) error {
	if f.failErr != nil {
		return f.failErr
	}
	if _, ok := f.secrets[in.Name]; ok {
		return goerror.ErrConflict
	}
	f.secrets[in.Name] = in.SecretKey
	return nil
}

func (f *fakeRepo) GetSecret(_ context.Context, name string) (*entity.Secret, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	key, ok := f.secrets[name]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &entity.Secret{Name: name, SecretKey: key}, nil
}

func (f *fakeRepo) DeleteSecret(_ context.Context, name string) error {
	if f.failErr != nil {
		return f.failErr
	}
	if _, ok := f.secrets[name]; !ok {
		return goerror.ErrNotFound
	}
	delete(f.secrets, name)
	return nil
}

func (f *fakeRepo) ListSecretNames(_ context.Context) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	names := make([]string, 0, len(f.secrets))
	for name := range f.secrets {
		names = append(names, name)
	}
	return names, nil
}

func newTestUsecase(t *testing.T, repo *fakeRepo, at time.Time) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Totp:       totp.NewEngine(totp.DefaultPeriod, totp.DefaultDigits),
		Clock:      clock.NewFixed(at),
		Instrument: instrument.NewNoop(),
	})
}

func errCode(t *testing.T, err error) goerror.Code {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error %v is not a *goerror.Error", err)
	}
	return gerr.Code()
}

func TestGetCode(t *testing.T) {
	repo := newFakeRepo(map[string]string{"github": "JBSWY3DPEHPK3PXP"})
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	out, err := uc.GetCode(context.Background(), GetCodeInput{Name: "GitHub"})
	if err != nil {
		t.Fatalf("GetCode: %v", err)
	}
	if out.Name != "github" {
		t.Errorf("Name = %q, want %q", out.Name, "github")
	}
	if out.Code != "324550" {
		t.Errorf("Code = %q, want %q", out.Code, "324550")
	}
}

func TestGetCodeNotFound(t *testing.T) {
	uc := newTestUsecase(t, newFakeRepo(nil), time.Unix(1700000000, 0))

	_, err := uc.GetCode(context.Background(), GetCodeInput{Name: "missing"})
	if code := errCode(t, err); code != goerror.CodeNotFound {
		t.Errorf("error code = %v, want %v", code, goerror.CodeNotFound)
	}
}

func TestGetCodeCorruptSecret(t *testing.T) {
	repo := newFakeRepo(map[string]string{"bad": "not base32!"})
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	_, err := uc.GetCode(context.Background(), GetCodeInput{Name: "bad"})
	if code := errCode(t, err); code != goerror.CodeCorruptData {
		t.Errorf("error code = %v, want %v", code, goerror.CodeCorruptData)
	}
}

func TestGetCodeStorageFailure(t *testing.T) {
	repo := newFakeRepo(nil)
	repo.failErr = errors.New("connection refused")
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	_, err := uc.GetCode(context.Background(), GetCodeInput{Name: "github"})
	if code := errCode(t, err); code != goerror.CodeInternal {
		t.Errorf("error code = %v, want %v", code, goerror.CodeInternal)
	}
}

func TestAddCode(t *testing.T) {
	repo := newFakeRepo(nil)
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	out, err := uc.AddCode(context.Background(), AddCodeInput{Name: "GitHub", SecretKey: "jbswy3dpehpk3pxp"})
	if err != nil {
		t.Fatalf("AddCode: %v", err)
	}
	if out.Name != "github" {
		t.Errorf("Name = %q, want %q", out.Name, "github")
	}
	if got := repo.secrets["github"]; got != "JBSWY3DPEHPK3PXP" {
		t.Errorf("stored key = %q, want uppercased %q", got, "JBSWY3DPEHPK3PXP")
	}
}

func TestAddCodeInvalidSecretKey(t *testing.T) {
	uc := newTestUsecase(t, newFakeRepo(nil), time.Unix(1700000000, 0))

	_, err := uc.AddCode(context.Background(), AddCodeInput{Name: "github", SecretKey: "not base32!"})
	if code := errCode(t, err); code != goerror.CodeInvalidInput {
		t.Errorf("error code = %v, want %v", code, goerror.CodeInvalidInput)
	}
}

func TestAddCodeDuplicate(t *testing.T) {
	repo := newFakeRepo(map[string]string{"github": "JBSWY3DPEHPK3PXP"})
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	_, err := uc.AddCode(context.Background(), AddCodeInput{Name: "GITHUB", SecretKey: "JBSWY3DPEHPK3PXP"})
	if code := errCode(t, err); code != goerror.CodeConflict {
		t.Errorf("error code = %v, want %v", code, goerror.CodeConflict)
	}
}

func TestDeleteCode(t *testing.T) {
	repo := newFakeRepo(map[string]string{"github": "JBSWY3DPEHPK3PXP"})
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	if _, err := uc.DeleteCode(context.Background(), DeleteCodeInput{Name: "GitHub"}); err != nil {
		t.Fatalf("DeleteCode: %v", err)
	}
	if _, ok := repo.secrets["github"]; ok {
		t.Error("secret still present after delete")
	}

	_, err := uc.DeleteCode(context.Background(), DeleteCodeInput{Name: "github"})
	if code := errCode(t, err); code != goerror.CodeNotFound {
		t.Errorf("error code = %v, want %v", code, goerror.CodeNotFound)
	}
}

func TestListCodes(t *testing.T) {
	repo := newFakeRepo(map[string]string{
		"github": "JBSWY3DPEHPK3PXP",
		"aws":    "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
	})
	uc := newTestUsecase(t, repo, time.Unix(1700000000, 0))

	out, err := uc.ListCodes(context.Background())
	if err != nil {
		t.Fatalf("ListCodes: %v", err)
	}
	if len(out.Names) != 2 {
		t.Fatalf("len(Names) = %d, want 2", len(out.Names))
	}

	empty := newTestUsecase(t, newFakeRepo(nil), time.Unix(1700000000, 0))
	out, err = empty.ListCodes(context.Background())
	if err != nil {
		t.Fatalf("ListCodes(empty): %v", err)
	}
	if len(out.Names) != 0 {
		t.Errorf("len(Names) = %d, want 0", len(out.Names))
	}
}
