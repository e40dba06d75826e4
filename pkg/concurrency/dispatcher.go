package concurrency

import multierror "github.com/hashicorp/go-multierror"

// Dispatcher models two-way communication between 1 dispatcher and n=concurrency workers.
//
// It reads from input channel, calls dispatch, sends resulting items into dispatch channel,
// and waits for processed items from workers via input channel to continue the process.
//
// Each worker reads from dispatch channel, calls work on received items, and sends them back to the dispatcher.
// Dispatcher terminates when input channel is completely drained and no new items are generated from dispatch.
// Errors of every item seen, seeded or dispatched, are aggregated into the result.
func Dispatcher[D any, O any](dispatch func(*Item[D, O]) ([]*Item[D, O], error), work func(*Item[D, O]) (O, error), items []*Item[D, O], concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}
	ich := make(chan *Item[D, O])
	dch := make(chan *Item[D, O])

	for i := 0; i < concurrency; i++ {
		go dispatchWorker(work, dch, ich)
	}
	go func() {
		for _, i := range items {
			ich <- i
		}
	}()

	var errs *multierror.Error
	for pending := len(items); pending > 0; pending-- {
		i := <-ich
		if i.Err != nil {
			errs = multierror.Append(errs, i.Err)
			continue
		}
		out, err := dispatch(i)
		if err != nil {
			i.Err = err
			errs = multierror.Append(errs, err)
			continue
		}
		pending += len(out)
		for _, o := range out {
			dch <- o
		}
	}
	close(ich)
	close(dch)

	return errs.ErrorOrNil()
}

func dispatchWorker[D any, O any](f func(*Item[D, O]) (O, error), dch chan *Item[D, O], ich chan *Item[D, O]) {
	for i := range dch {
		i.Output, i.Err = f(i)
		go func(i *Item[D, O]) { ich <- i }(i)
	}
}
