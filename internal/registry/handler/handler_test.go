package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"curio/internal/challenge"
	"curio/internal/events"
	"curio/internal/jwttoken"
	"curio/internal/registry/handler"
	"curio/internal/registry/service"
	challengestore "curio/internal/registry/store/challenge"
	"curio/internal/registry/store/item"
	"curio/internal/token"
	"curio/internal/voting"
	"curio/pkg/domain"
)

const (
	registryAddr = domain.Address("registry")
	owner        = domain.Address("owner")
	challenger   = domain.Address("challenger")

	minStake          = uint64(100)
	applicationPeriod = time.Hour
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// HandlerSuite drives the registry API over HTTP against the full in-memory
// stack, including bearer-token auth.
type HandlerSuite struct {
	suite.Suite
	router *chi.Mux
	clock  *fakeClock
	ledger *token.Ledger
	oracle *voting.Oracle
	tokens *jwttoken.Service

	itemID string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s.ledger = token.NewLedger()
	s.oracle = voting.NewOracle(s.clock)
	s.tokens = jwttoken.NewService("test-key", "curio", "curio")
	sink := events.NewMemorySink()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	factory, err := challenge.NewFactory(s.ledger, s.oracle, sink, challenge.Params{
		Stake:              minStake,
		VoteQuorum:         50,
		PercentVoterReward: 20,
		CommitStageLength:  time.Hour,
		RevealStageLength:  time.Hour,
	})
	s.Require().NoError(err)

	registry, err := service.NewService(
		service.Config{Address: registryAddr, MinStake: minStake, ApplicationPeriod: applicationPeriod},
		item.NewMemoryStore(), challengestore.NewMemoryStore(), s.ledger, factory, sink,
		service.WithClock(s.clock), service.WithLogger(logger),
	)
	s.Require().NoError(err)

	s.ledger.Mint(owner, 1000)
	s.ledger.Mint(challenger, 1000)

	s.router = chi.NewRouter()
	handler.New(registry, s.tokens, logger).Register(s.router)

	data, err := domain.NewItemData("listing 001")
	s.Require().NoError(err)
	s.itemID = data.ID().String()
}

func (s *HandlerSuite) do(method, path string, as domain.Address, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if as != "" {
		tok, err := s.tokens.GenerateAccessToken(as, time.Minute)
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlerSuite) decode(rr *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(v))
}

func (s *HandlerSuite) addItem() {
	rr := s.do(http.MethodPost, "/registry/items", owner, `{"data":"listing 001"}`)
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
}

func (s *HandlerSuite) TestAddItem() {
	s.Run("requires a bearer token", func() {
		rr := s.do(http.MethodPost, "/registry/items", "", `{"data":"listing 001"}`)
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("rejects a malformed body", func() {
		rr := s.do(http.MethodPost, "/registry/items", owner, `{"data":`)
		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("creates the listing", func() {
		rr := s.do(http.MethodPost, "/registry/items", owner, `{"data":"listing 001"}`)
		s.Require().Equal(http.StatusCreated, rr.Code)

		var resp struct {
			ID     string `json:"id"`
			Data   string `json:"data"`
			Owner  string `json:"owner"`
			Stake  uint64 `json:"stake"`
			Locked bool   `json:"locked"`
		}
		s.decode(rr, &resp)
		s.Equal(s.itemID, resp.ID)
		s.Equal("listing 001", resp.Data)
		s.Equal(string(owner), resp.Owner)
		s.Equal(minStake, resp.Stake)
		s.True(resp.Locked)
	})

	s.Run("rejects a duplicate", func() {
		rr := s.do(http.MethodPost, "/registry/items", owner, `{"data":"listing 001"}`)
		s.Equal(http.StatusConflict, rr.Code)
	})
}

func (s *HandlerSuite) TestGetItem() {
	s.addItem()

	s.Run("returns the listing without auth", func() {
		rr := s.do(http.MethodGet, "/registry/items/"+s.itemID, "", "")
		s.Require().Equal(http.StatusOK, rr.Code)

		var resp struct {
			ID         string `json:"id"`
			Challenged bool   `json:"challenged"`
		}
		s.decode(rr, &resp)
		s.Equal(s.itemID, resp.ID)
		s.False(resp.Challenged)
	})

	s.Run("404 on an unknown id", func() {
		rr := s.do(http.MethodGet, "/registry/items/"+strings.Repeat("00", 32), "", "")
		s.Equal(http.StatusNotFound, rr.Code)
	})

	s.Run("400 on a malformed id", func() {
		rr := s.do(http.MethodGet, "/registry/items/zzz", "", "")
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}

func (s *HandlerSuite) TestListItems() {
	s.addItem()

	rr := s.do(http.MethodGet, "/registry/items", "", "")
	s.Require().Equal(http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	s.decode(rr, &resp)
	s.Require().Len(resp.Items, 1)
	s.Equal(s.itemID, resp.Items[0].ID)
}

func (s *HandlerSuite) TestRemoveItem() {
	s.addItem()

	s.Run("409 while the listing is locked", func() {
		rr := s.do(http.MethodDelete, "/registry/items/"+s.itemID, owner, "")
		s.Equal(http.StatusConflict, rr.Code)
	})

	s.clock.Advance(applicationPeriod + time.Second)

	s.Run("403 for a caller who is not the owner", func() {
		rr := s.do(http.MethodDelete, "/registry/items/"+s.itemID, challenger, "")
		s.Equal(http.StatusForbidden, rr.Code)
	})

	s.Run("removes the listing", func() {
		rr := s.do(http.MethodDelete, "/registry/items/"+s.itemID, owner, "")
		s.Equal(http.StatusNoContent, rr.Code)

		rr = s.do(http.MethodGet, "/registry/items/"+s.itemID, "", "")
		s.Equal(http.StatusNotFound, rr.Code)
	})
}

func (s *HandlerSuite) TestStake() {
	s.addItem()

	s.Run("rejects a zero amount", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/stake", owner, `{"amount":0}`)
		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("increases the stake", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/stake", owner, `{"amount":50}`)
		s.Require().Equal(http.StatusOK, rr.Code)

		var resp struct {
			Stake uint64 `json:"stake"`
		}
		s.decode(rr, &resp)
		s.Equal(minStake+50, resp.Stake)
	})

	s.Run("refuses to drop below the minimum", func() {
		rr := s.do(http.MethodDelete, "/registry/items/"+s.itemID+"/stake", owner, `{"amount":51}`)
		s.Equal(http.StatusUnprocessableEntity, rr.Code)
	})

	s.Run("decreases the stake", func() {
		rr := s.do(http.MethodDelete, "/registry/items/"+s.itemID+"/stake", owner, `{"amount":50}`)
		s.Require().Equal(http.StatusOK, rr.Code)

		var resp struct {
			Stake uint64 `json:"stake"`
		}
		s.decode(rr, &resp)
		s.Equal(minStake, resp.Stake)
	})
}

func (s *HandlerSuite) TestChallengeFlow() {
	s.addItem()

	var challengeID string
	var pollID uint64

	s.Run("opens a challenge", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/challenge", challenger, "")
		s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())

		var resp struct {
			ChallengeID   string `json:"challenge_id"`
			PollID        uint64 `json:"poll_id"`
			RequiredFunds uint64 `json:"required_funds"`
		}
		s.decode(rr, &resp)
		s.NotEmpty(resp.ChallengeID)
		s.NotZero(resp.PollID)
		challengeID = resp.ChallengeID
		pollID = resp.PollID
	})

	s.Run("rejects a second challenge", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/challenge", challenger, "")
		s.Equal(http.StatusConflict, rr.Code)
	})

	s.Run("cannot resolve while the poll runs", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/resolve", challenger, "")
		s.Equal(http.StatusConflict, rr.Code)
	})

	// One voter sides with the listing.
	ctx := context.Background()
	voter := domain.Address("voter")
	s.Require().NoError(s.oracle.CommitVote(ctx, voter, pollID, voting.Commitment(voting.VoteFor, 9), 30))
	s.clock.Advance(time.Hour)
	s.Require().NoError(s.oracle.RevealVote(ctx, voter, pollID, voting.VoteFor, 9))
	s.clock.Advance(time.Hour)

	s.Run("resolves the failed challenge", func() {
		rr := s.do(http.MethodPost, "/registry/items/"+s.itemID+"/resolve", challenger, "")
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Outcome string `json:"outcome"`
		}
		s.decode(rr, &resp)
		s.Equal("challenge_failed", resp.Outcome)
	})

	s.Run("pays the winning voter", func() {
		rr := s.do(http.MethodPost, "/registry/challenges/"+challengeID+"/claim", voter, `{"salt":9}`)
		s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

		var resp struct {
			Reward uint64 `json:"reward"`
		}
		s.decode(rr, &resp)
		s.Equal(minStake*20/100, resp.Reward)
	})

	s.Run("rejects a double claim", func() {
		rr := s.do(http.MethodPost, "/registry/challenges/"+challengeID+"/claim", voter, `{"salt":9}`)
		s.Equal(http.StatusConflict, rr.Code)
	})
}
