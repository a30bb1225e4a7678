package service

import (
	"context"
	"errors"
	"fmt"

	"walletgate/internal/audit"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	"walletgate/internal/sentinel"
	"walletgate/internal/wallet"
	dErrors "walletgate/pkg/domain-errors"
)

// Preview loads a contract and builds the terms the holder would start from.
// When the holder already has live terms for the contract those are returned instead.
// Live categories are reconciled against the credential index either way.
func (s *Service) Preview(ctx context.Context, user models.User, contractURI string) (*PreviewResult, error) {
	if err := requireHolder(user.DID); err != nil {
		return nil, err
	}
	if contractURI == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "contract uri is required")
	}

	details, err := s.network.GetContract(ctx, contractURI)
	if err != nil {
		return nil, networkError(err, "failed to load contract")
	}

	existing, err := s.findConsented(ctx, user.DID, contractURI)
	if err != nil {
		return nil, err
	}

	result := &PreviewResult{Details: details}
	base := terms.MinimumTerms(details.Contract, user)
	if existing != nil {
		base = existing.Terms
		result.TermsURI = existing.URI
	}

	reconciled, err := s.reconciler.Reconcile(ctx, user.DID, base)
	if err != nil {
		return nil, err
	}
	result.Terms = reconciled.Terms
	result.Truncated = reconciled.Truncated
	return result, nil
}

// Consented lists the holder's consented contracts.
func (s *Service) Consented(ctx context.Context, user models.User) ([]models.ConsentedContract, error) {
	if err := requireHolder(user.DID); err != nil {
		return nil, err
	}
	contracts, err := s.network.ConsentedContracts(ctx, user.DID)
	if err != nil {
		return nil, networkError(err, "failed to list consented contracts")
	}
	return contracts, nil
}

func (s *Service) findConsented(ctx context.Context, holderDID, contractURI string) (*models.ConsentedContract, error) {
	contracts, err := s.network.ConsentedContracts(ctx, holderDID)
	if err != nil {
		return nil, networkError(err, "failed to list consented contracts")
	}
	for i := range contracts {
		c := contracts[i]
		if c.Contract.URI == contractURI && c.Status != models.TermsStatusWithdrawn {
			return &c, nil
		}
	}
	return nil, nil
}

// findTerms returns the holder's live consent stored under termsURI.
func (s *Service) findTerms(ctx context.Context, holderDID, termsURI string) (*models.ConsentedContract, error) {
	contracts, err := s.network.ConsentedContracts(ctx, holderDID)
	if err != nil {
		return nil, networkError(err, "failed to list consented contracts")
	}
	for i := range contracts {
		if contracts[i].URI == termsURI && contracts[i].Status != models.TermsStatusWithdrawn {
			return &contracts[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "terms not found")
}

// Accept consents to a contract with the given terms.
//
// Required permissions must be granted. A conflict from the network means the holder
// already consented and is reported as success with AlreadyConsented set.
// Child profiles must pass the guardian gate first.
func (s *Service) Accept(ctx context.Context, req AcceptRequest) (*AcceptResult, error) {
	user := req.Session.User
	if err := requireHolder(user.DID); err != nil {
		return nil, err
	}
	if req.ContractURI == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "contract uri is required")
	}

	details, err := s.network.GetContract(ctx, req.ContractURI)
	if err != nil {
		return nil, networkError(err, "failed to load contract")
	}
	if err := terms.EnforceRequired(details.Contract, req.Terms); err != nil {
		s.incrementConsentsAccepted("rejected")
		return nil, err
	}

	result := &AcceptResult{RedirectURL: details.RedirectURL}
	err = s.guard(ctx, req.Session, func(ctx context.Context) error {
		termsURI, cerr := s.network.ConsentToContract(ctx, user.DID, wallet.ConsentRequest{
			ContractURI: req.ContractURI,
			Terms:       req.Terms,
			ExpiresAt:   req.Duration.CustomDuration,
			OneTime:     req.Duration.OneTimeShare,
		})
		if errors.Is(cerr, sentinel.ErrConflict) {
			result.AlreadyConsented = true
			return nil
		}
		if cerr != nil {
			return networkError(cerr, "failed to consent to contract")
		}
		result.TermsURI = termsURI
		return nil
	})
	if err != nil {
		s.incrementConsentsAccepted("error")
		return nil, err
	}

	if result.AlreadyConsented {
		s.logger.InfoContext(ctx, "holder already consented to contract",
			"contract_uri", req.ContractURI,
		)
		s.incrementConsentsAccepted("already_consented")
		s.emitAudit(ctx, audit.Event{
			HolderDID: user.DID,
			Subject:   req.ContractURI,
			OwnerDID:  details.Owner.DID,
			Action:    models.AuditActionConsentExisting,
			Decision:  models.AuditDecisionGranted,
			Reason:    models.AuditReasonUserInitiated,
		})
		return result, nil
	}

	s.incrementConsentsAccepted("accepted")
	s.emitAudit(ctx, audit.Event{
		HolderDID: user.DID,
		Subject:   req.ContractURI,
		TermsURI:  result.TermsURI,
		OwnerDID:  details.Owner.DID,
		Action:    models.AuditActionConsentAccepted,
		Decision:  models.AuditDecisionGranted,
		Reason:    models.AuditReasonUserInitiated,
	})
	return result, nil
}

// UpdateTerms reconciles the edited terms and saves them when they differ from the
// saved copy. Unchanged terms never reach the network. Changed terms must still grant
// every permission the contract requires.
func (s *Service) UpdateTerms(ctx context.Context, req UpdateRequest) (*UpdateResult, error) {
	if err := requireHolder(req.User.DID); err != nil {
		return nil, err
	}
	if req.TermsURI == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "terms uri is required")
	}

	reconciled, err := s.reconciler.Reconcile(ctx, req.User.DID, req.Edited)
	if err != nil {
		return nil, err
	}
	result := &UpdateResult{Terms: reconciled.Terms, Truncated: reconciled.Truncated}
	if !terms.IsUpdated(req.Saved, reconciled.Terms) {
		s.incrementTermsUpdated("unchanged")
		return result, nil
	}

	live, err := s.findTerms(ctx, req.User.DID, req.TermsURI)
	if err != nil {
		return nil, err
	}
	if err := terms.EnforceRequired(live.Contract.Contract, reconciled.Terms); err != nil {
		s.incrementTermsUpdated("rejected")
		return nil, err
	}

	err = s.network.UpdateTerms(ctx, req.User.DID, wallet.TermsUpdate{
		TermsURI:  req.TermsURI,
		Terms:     reconciled.Terms,
		ExpiresAt: req.Duration.CustomDuration,
		OneTime:   req.Duration.OneTimeShare,
	})
	if err != nil {
		s.incrementTermsUpdated("error")
		return nil, networkError(err, "failed to update terms")
	}
	result.Saved = true

	s.incrementTermsUpdated("saved")
	s.emitAudit(ctx, audit.Event{
		HolderDID: req.User.DID,
		TermsURI:  req.TermsURI,
		Subject:   live.Contract.URI,
		OwnerDID:  live.Contract.Owner.DID,
		Action:    models.AuditActionTermsUpdated,
		Decision:  models.AuditDecisionUpdated,
		Reason:    models.AuditReasonUserInitiated,
	})
	return result, nil
}

// Withdraw withdraws consent and, when asked, deletes every credential the contract
// issued to the holder. A deletion failure after a successful withdraw is returned
// together with the partial result.
func (s *Service) Withdraw(ctx context.Context, req WithdrawRequest) (*WithdrawResult, error) {
	user := req.Session.User
	if err := requireHolder(user.DID); err != nil {
		return nil, err
	}
	if req.TermsURI == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "terms uri is required")
	}
	if req.DeleteCredentials && req.ContractURI == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "contract uri is required to delete credentials")
	}

	result := &WithdrawResult{}
	var deleteErr error
	err := s.guard(ctx, req.Session, func(ctx context.Context) error {
		if werr := s.network.WithdrawConsent(ctx, user.DID, req.TermsURI); werr != nil {
			return networkError(werr, "failed to withdraw consent")
		}
		result.Withdrawn = true
		if req.DeleteCredentials {
			result.Deleted, deleteErr = s.deleteContractCredentials(ctx, user.DID, req.ContractURI)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordWithdrawal(result.Deleted)
	s.emitAudit(ctx, audit.Event{
		HolderDID: user.DID,
		Subject:   req.ContractURI,
		TermsURI:  req.TermsURI,
		Action:    models.AuditActionConsentWithdrawn,
		Decision:  models.AuditDecisionWithdrawn,
		Reason:    models.AuditReasonUserInitiated,
		Count:     result.Deleted,
	})
	if deleteErr != nil {
		s.logger.ErrorContext(ctx, "consent withdrawn but credential deletion failed",
			"terms_uri", req.TermsURI,
			"deleted", result.Deleted,
			"error", deleteErr,
		)
		return result, deleteErr
	}
	return result, nil
}

func (s *Service) deleteContractCredentials(ctx context.Context, holderDID, contractURI string) (int, error) {
	records, err := s.network.CredentialsFromContract(ctx, holderDID, contractURI)
	if err != nil {
		return 0, networkError(err, "consent withdrawn but failed to list contract credentials")
	}
	deleted := 0
	for _, rec := range records {
		if err := s.network.DeleteCredentialRecord(ctx, holderDID, rec.ID); err != nil {
			return deleted, networkError(err, fmt.Sprintf("consent withdrawn but failed to delete credential %s", rec.ID))
		}
		deleted++
	}
	return deleted, nil
}
