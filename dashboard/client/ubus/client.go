// Package ubus talks to rpcd's JSON-RPC endpoint, the way the LuCI views
// reach the podman and systembus objects.
package ubus

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Gthulhu/podboard/config"
	"github.com/Gthulhu/podboard/dashboard/domain"
	"github.com/Gthulhu/podboard/dashboard/errs"
	"github.com/Gthulhu/podboard/pkg/logger"
	"github.com/pkg/errors"
)

const (
	// AnonymousSession is the rpcd session id granted without login.
	AnonymousSession = "00000000000000000000000000000000"

	codeAccessDenied = -32002
	sessionKey       = "session"
	sessionGrace     = 10 * time.Second
)

var (
	_ domain.Transport = (*Client)(nil)
	_ domain.CPUSource = (*Client)(nil)
)

func NewClient(cfg config.UbusConfig) *Client {
	object := cfg.Object
	if object == "" {
		object = "podman"
	}
	httpClient := &http.Client{}
	if cfg.TimeoutSec > 0 {
		httpClient.Timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}
	return &Client{
		Client:       httpClient,
		url:          cfg.URL,
		username:     cfg.Username,
		password:     cfg.Password.Value(),
		object:       object,
		sessionCache: cache.New[string, string](),
	}
}

type Client struct {
	*http.Client

	url          string
	username     string
	password     string
	object       string
	sessionCache *cache.Cache[string, string]
	requestID    atomic.Uint64
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     uint64            `json:"id"`
	Result []json.RawMessage `json:"result"`
	Error  *RPCError         `json:"error"`
}

// RPCError is a JSON-RPC level failure, such as an expired session.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return "ubus rpc error " + strconv.Itoa(e.Code) + ": " + e.Message
}

type loginReply struct {
	Session string `json:"ubus_rpc_session"`
	Expires int    `json:"expires"`
}

func (c *Client) ListContainers(ctx context.Context) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := c.Call(ctx, c.object, "list", struct{}{}, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *Client) Exec(ctx context.Context, verb domain.Verb, group, name string) error {
	args := map[string]string{
		"action": verb.String(),
		"group":  group,
		"name":   name,
	}
	logger.Logger(ctx).Debug().Msgf("calling %s.exec action=%s group=%s name=%s", c.object, verb, group, name)
	return c.Call(ctx, c.object, "exec", args, nil)
}

func (c *Client) CPUInfo(ctx context.Context) (domain.CPUInfo, error) {
	var raw map[string]any
	if err := c.Call(ctx, "system.cpu", "list", struct{}{}, &raw); err != nil {
		return nil, err
	}
	info := make(domain.CPUInfo, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case float64:
			info[key] = v
		case string:
			f, _ := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
			info[key] = f
		}
	}
	return info, nil
}

func (c *Client) SystemInfo(ctx context.Context) (domain.SystemInfo, error) {
	var info domain.SystemInfo
	err := c.Call(ctx, "system.info", "list", struct{}{}, &info)
	return info, err
}

// Call invokes object.method with args and decodes the reply payload into
// out. A nil out ignores the payload.
func (c *Client) Call(ctx context.Context, object, method string, args any, out any) error {
	session, err := c.Session(ctx)
	if err != nil {
		return err
	}

	result, err := c.call(ctx, session, object, method, args)
	if err != nil {
		if rpcErr, ok := errors.Cause(err).(*RPCError); ok && rpcErr.Code == codeAccessDenied {
			c.sessionCache.Delete(sessionKey)
		}
		return err
	}
	if out == nil {
		return nil
	}
	if len(result) < 2 {
		return errors.WithMessagef(domain.ErrMalformedReply, "%s.%s returned no payload", object, method)
	}
	if err := json.Unmarshal(result[1], out); err != nil {
		return errors.Wrapf(domain.ErrMalformedReply, "decode %s.%s payload: %v", object, method, err)
	}
	return nil
}

// Session returns the cached rpcd session, logging in when it has expired.
func (c *Client) Session(ctx context.Context) (string, error) {
	if c.username == "" {
		return AnonymousSession, nil
	}
	if session, ok := c.sessionCache.Get(sessionKey); ok {
		return session, nil
	}

	result, err := c.call(ctx, AnonymousSession, "session", "login", map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return "", errors.WithMessage(err, "ubus login")
	}
	var reply loginReply
	if len(result) < 2 {
		return "", errors.WithMessage(domain.ErrNoSession, "ubus login returned no session")
	}
	if err := json.Unmarshal(result[1], &reply); err != nil || reply.Session == "" {
		return "", errors.WithMessage(domain.ErrNoSession, "ubus login returned no session")
	}

	ttl := time.Duration(reply.Expires)*time.Second - sessionGrace
	if ttl > 0 {
		c.sessionCache.Set(sessionKey, reply.Session, cache.WithExpiration(ttl))
	}
	logger.Logger(ctx).Debug().Msgf("ubus session for %s valid for %s", c.username, ttl)
	return reply.Session, nil
}

func (c *Client) call(ctx context.Context, session, object, method string, args any) ([]json.RawMessage, error) {
	reqPayload := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  "call",
		Params:  []any{session, object, method, args},
	}
	jsonBody, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.WithMessagef(err, "ubus %s.%s", object, method)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.NewHTTPStatusError(resp.StatusCode, "ubus "+object+"."+method+" returned "+resp.Status, nil)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedReply, "decode %s.%s reply: %v", object, method, err)
	}
	if rpcResp.Error != nil {
		return nil, errors.WithStack(rpcResp.Error)
	}
	if len(rpcResp.Result) == 0 {
		return nil, errors.WithMessagef(domain.ErrMalformedReply, "%s.%s returned an empty result", object, method)
	}
	var status int
	if err := json.Unmarshal(rpcResp.Result[0], &status); err != nil {
		return nil, errors.Wrapf(domain.ErrMalformedReply, "decode %s.%s status: %v", object, method, err)
	}
	if status != 0 {
		return nil, errors.Errorf("ubus %s.%s returned status %d", object, method, status)
	}
	return rpcResp.Result, nil
}
