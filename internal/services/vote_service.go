package services

type VoteRepository interface {
	AddVote(recipeID uint, delta int) (int, bool, error)
}

type VoteService struct {
	votes VoteRepository
}

func NewVoteService(votes VoteRepository) *VoteService {
	return &VoteService{votes: votes}
}

// ApplyVote adds the caller-supplied delta to the recipe's score and returns
// the updated value. The delta is not clamped; scores may go negative.
func (service *VoteService) ApplyVote(recipeID uint, delta int) (int, error) {
	score, found, err := service.votes.AddVote(recipeID, delta)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrRecipeNotFound
	}
	return score, nil
}
