// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/gorilla/rpc/v2"

	"github.com/hookgate/hookgate/admin"
	"github.com/hookgate/hookgate/api"
	"github.com/hookgate/hookgate/hook"
	"github.com/hookgate/hookgate/ids"
	"github.com/hookgate/hookgate/resolver"
	"github.com/hookgate/hookgate/utils/formatting"
	"github.com/hookgate/hookgate/utils/logging"

	hookgatejson "github.com/hookgate/hookgate/utils/json"
)

const Name = "hookgate"

// Service is the JSON-RPC surface of the gate. Administrative calls are
// delegated to the admin layer and authorization calls to the gate itself.
type Service struct {
	log   logging.Logger
	admin *admin.Admin
	gate  *hook.Gate
}

// NewHandler returns an HTTP handler serving the service over JSON-RPC 2.0.
func NewHandler(log logging.Logger, adm *admin.Admin, gate *hook.Gate) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(hookgatejson.NewCodec(), "application/json")
	server.RegisterCodec(hookgatejson.NewCodec(), "application/json;charset=utf-8")
	return server, server.RegisterService(
		&Service{
			log:   log,
			admin: adm,
			gate:  gate,
		},
		Name,
	)
}

type InitializeAllowListArgs struct {
	Authority ids.Address `json:"authority"`
}

type InitializeAllowListReply struct {
	Bump uint8 `json:"bump"`
}

// InitializeAllowList creates the allow-list record with the caller as
// authority. It fails if the record already exists.
func (s *Service) InitializeAllowList(_ *http.Request, args *InitializeAllowListArgs, reply *InitializeAllowListReply) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "initializeAllowList"),
		zap.Stringer("authority", args.Authority),
	)

	bump, err := s.admin.InitializeAllowList(args.Authority)
	if err != nil {
		return err
	}
	reply.Bump = bump
	return nil
}

type InitializeExtraAccountMetasArgs struct {
	Mint ids.Address `json:"mint"`
}

type InitializeExtraAccountMetasReply struct {
	Address ids.Address         `json:"address"`
	Size    hookgatejson.Uint64 `json:"size"`
}

// InitializeExtraAccountMetas creates the per-mint metadata record that
// tells callers which extra accounts an authorization call requires.
func (s *Service) InitializeExtraAccountMetas(_ *http.Request, args *InitializeExtraAccountMetasArgs, reply *InitializeExtraAccountMetasReply) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "initializeExtraAccountMetas"),
		zap.Stringer("mint", args.Mint),
	)

	addr, size, err := s.admin.InitializeExtraAccountMetas(args.Mint)
	if err != nil {
		return err
	}
	reply.Address = addr
	reply.Size = hookgatejson.Uint64(size)
	return nil
}

type AuthorizeArgs struct {
	// Source is the hex encoding of the source token account's raw bytes.
	Source      string              `json:"source"`
	Mint        ids.Address         `json:"mint"`
	Destination ids.Address         `json:"destination"`
	Owner       ids.Address         `json:"owner"`
	Amount      hookgatejson.Uint64 `json:"amount"`
}

type AuthorizeReply struct {
	Authorized bool `json:"authorized"`
}

// Authorize runs the transfer gate against the current allow-list. An
// authorization failure is returned as an error so the caller can
// distinguish the failure classes; Authorized is only set on success.
func (s *Service) Authorize(_ *http.Request, args *AuthorizeArgs, reply *AuthorizeReply) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "authorize"),
		zap.Stringer("owner", args.Owner),
		zap.Stringer("mint", args.Mint),
	)

	source, err := formatting.DecodeHex(args.Source)
	if err != nil {
		return err
	}

	allowList, err := s.admin.GetAllowList()
	if err != nil {
		return err
	}

	if err := s.gate.Authorize(
		source,
		args.Mint,
		args.Destination,
		args.Owner,
		allowList,
		uint64(args.Amount),
	); err != nil {
		return err
	}
	reply.Authorized = true
	return nil
}

type ModifyAllowListArgs struct {
	Authority ids.Address `json:"authority"`
	Address   ids.Address `json:"address"`
}

// AddAddress adds an address to the allow-list. Only the stored authority
// may call it.
func (s *Service) AddAddress(_ *http.Request, args *ModifyAllowListArgs, reply *api.SuccessResponse) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "addAddress"),
		zap.Stringer("address", args.Address),
	)

	if err := s.admin.Add(args.Authority, args.Address); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

// RemoveAddress removes an address from the allow-list. Removing an absent
// address succeeds without changing anything.
func (s *Service) RemoveAddress(_ *http.Request, args *ModifyAllowListArgs, reply *api.SuccessResponse) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "removeAddress"),
		zap.Stringer("address", args.Address),
	)

	if err := s.admin.Remove(args.Authority, args.Address); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type GetAllowListReply struct {
	Addresses []ids.Address `json:"addresses"`
	Bump      uint8         `json:"bump"`
}

// GetAllowList returns the current allow-list contents.
func (s *Service) GetAllowList(_ *http.Request, _ *api.EmptyArgs, reply *GetAllowListReply) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "getAllowList"),
	)

	list, err := s.admin.GetAllowList()
	if err != nil {
		return err
	}
	reply.Addresses = list.Addresses
	reply.Bump = list.Bump
	return nil
}

type ResolveExtraAccountMetasArgs struct {
	Mint ids.Address `json:"mint"`
}

type ResolveExtraAccountMetasReply struct {
	// Metas holds the hex encoding of each resolved entry's wire bytes.
	Metas []string `json:"metas"`
}

// ResolveExtraAccountMetas reports the extra accounts an authorization call
// for the given mint requires.
func (s *Service) ResolveExtraAccountMetas(_ *http.Request, args *ResolveExtraAccountMetasArgs, reply *ResolveExtraAccountMetasReply) error {
	s.log.Debug("API called",
		zap.String("service", Name),
		zap.String("method", "resolveExtraAccountMetas"),
		zap.Stringer("mint", args.Mint),
	)

	metas, err := resolver.Resolve(args.Mint)
	if err != nil {
		return err
	}
	reply.Metas = make([]string, len(metas))
	for i, meta := range metas {
		reply.Metas[i] = formatting.EncodeHex(meta.Bytes())
	}
	return nil
}
