package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"settings-server/internal/referencedata/domain"
)

type GeneralCodeService interface {
	ListGeneralCodes(ctx context.Context, filter GeneralCodeFilter, pagination Pagination) ([]domain.GeneralCode, int, error)
	GetGeneralCode(ctx context.Context, id int64) (domain.GeneralCode, error)
	GetGeneralCodeByNaturalKey(ctx context.Context, codeType, codeNumber int, languageCode string) (domain.GeneralCode, error)
	SaveGeneralCode(ctx context.Context, code domain.GeneralCode) (domain.GeneralCode, error)
	DeleteGeneralCode(ctx context.Context, id int64) error
	GeneralCodeExists(ctx context.Context, codeType, codeNumber int, languageCode string, excludeID int64) (bool, error)
}

func NewGeneralCodeService(codes GeneralCodeRepository) *SimpleGeneralCodeService {
	return &SimpleGeneralCodeService{
		codes: codes,
	}
}

var _ GeneralCodeService = (*SimpleGeneralCodeService)(nil)

type SimpleGeneralCodeService struct {
	codes GeneralCodeRepository
}

func (s *SimpleGeneralCodeService) ListGeneralCodes(ctx context.Context, filter GeneralCodeFilter, pagination Pagination) ([]domain.GeneralCode, int, error) {
	codes, total, err := s.codes.FindAll(ctx, filter, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("finding general codes: %w", err)
	}

	return codes, total, nil
}

func (s *SimpleGeneralCodeService) GetGeneralCode(ctx context.Context, id int64) (domain.GeneralCode, error) {
	return s.codes.GetByID(ctx, id)
}

func (s *SimpleGeneralCodeService) GetGeneralCodeByNaturalKey(ctx context.Context, codeType, codeNumber int, languageCode string) (domain.GeneralCode, error) {
	return s.codes.GetByNaturalKey(ctx, codeType, codeNumber, languageCode)
}

// SaveGeneralCode creates when the id is zero and updates otherwise.
// The (type, number, language) triple must stay unique either way.
func (s *SimpleGeneralCodeService) SaveGeneralCode(ctx context.Context, code domain.GeneralCode) (domain.GeneralCode, error) {
	taken, err := s.codes.Exists(ctx, code.CodeType, code.CodeNumber, code.LanguageCode, code.ID)
	if err != nil {
		return domain.GeneralCode{}, fmt.Errorf("checking general code: %w", err)
	}
	if taken {
		return domain.GeneralCode{}, ErrGeneralCodeDuplicated
	}

	if code.IsNew() {
		code.StampCreated()
		created, err := s.codes.Create(ctx, code)
		if err != nil {
			return domain.GeneralCode{}, fmt.Errorf("creating general code: %w", err)
		}
		slog.Info("general code created",
			slog.Int64("id", created.ID),
			slog.Int("code_type", created.CodeType),
			slog.Int("code_number", created.CodeNumber),
			slog.String("language", created.LanguageCode),
		)
		return created, nil
	}

	existing, err := s.codes.GetByID(ctx, code.ID)
	if err != nil {
		return domain.GeneralCode{}, err
	}

	existing.CodeType = code.CodeType
	existing.CodeNumber = code.CodeNumber
	existing.LanguageCode = code.LanguageCode
	existing.ShortDescription = code.ShortDescription
	existing.LongDescription = code.LongDescription
	existing.IsActive = code.IsActive
	existing.OpeningRegDate = code.OpeningRegDate
	existing.ClosingRegDate = code.ClosingRegDate
	existing.StampModified()

	err = s.codes.Update(ctx, existing)
	if err != nil {
		return domain.GeneralCode{}, fmt.Errorf("updating general code: %w", err)
	}

	return existing, nil
}

func (s *SimpleGeneralCodeService) DeleteGeneralCode(ctx context.Context, id int64) error {
	_, err := s.codes.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.codes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting general code: %w", err)
	}

	slog.Info("general code deleted", slog.Int64("id", id))
	return nil
}

func (s *SimpleGeneralCodeService) GeneralCodeExists(ctx context.Context, codeType, codeNumber int, languageCode string, excludeID int64) (bool, error) {
	return s.codes.Exists(ctx, codeType, codeNumber, languageCode, excludeID)
}
